package ai

import (
	"encoding/base64"
	"fmt"
)

// Media — бинарные данные изображения вместе с MIME-типом, который сообщил источник.
type Media struct {
	Data     []byte
	MimeType string
}

// Base64 кодирует данные стандартным base64 (с паддингом).
func (m Media) Base64() string {
	return base64.StdEncoding.EncodeToString(m.Data)
}

// DataURL возвращает изображение в виде data URL, как его принимает OpenAI.
func (m Media) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", m.MimeType, m.Base64())
}
