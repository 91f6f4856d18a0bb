package entity

// Conversation is the model context of a single request. It starts with exactly
// one system prompt and only ever grows at the tail.
type Conversation struct {
	messages []Message
}

// NewConversation prefixes history with systemPrompt. System messages found in
// history are skipped so the generated prompt stays the only one; the number of
// skipped messages is returned for logging.
func NewConversation(systemPrompt string, history []Message) (*Conversation, int) {
	messages := make([]Message, 0, len(history)+1)
	messages = append(messages, SystemMessage(systemPrompt))

	dropped := 0
	for _, msg := range history {
		if msg.Role == RoleSystem {
			dropped++
			continue
		}
		messages = append(messages, msg)
	}

	return &Conversation{messages: messages}, dropped
}

func (c *Conversation) Append(msg Message) {
	c.messages = append(c.messages, msg)
}

// Messages returns a copy, so backends can't mutate the log.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int {
	return len(c.messages)
}

// Chars is the total text length, used for request size logging.
func (c *Conversation) Chars() int {
	total := 0
	for _, msg := range c.messages {
		total += len(msg.Content)
		for _, part := range msg.Parts {
			total += len(part.Text)
		}
	}
	return total
}
