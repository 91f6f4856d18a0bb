package entity

type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeImage ContentType = "image"
	ContentTypeFile  ContentType = "file"
)

// ContentPart is one piece of a multimodal message. The loop never looks inside;
// provider adapters translate parts to their own wire shapes.
type ContentPart struct {
	Type     ContentType `json:"type"`
	Text     string      `json:"text,omitempty"`
	URL      string      `json:"url,omitempty"`
	MIMEType string      `json:"mime_type,omitempty"`
	Name     string      `json:"name,omitempty"`
	Data     []byte      `json:"data,omitempty"`
}

type Message struct {
	Role    MessageRole   `json:"role"`
	Content string        `json:"content"`
	Parts   []ContentPart `json:"parts,omitempty"`
}

func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// HasParts reports whether the message carries structured content.
func (m Message) HasParts() bool {
	return len(m.Parts) > 0
}
