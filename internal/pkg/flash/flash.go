// Package flash implements one-shot notification messages carried between
// requests in a short-lived cookie and cleared on read.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const cookieName = "enrollhub_flash"

// Message levels
const (
	LevelSuccess = "success"
	LevelError   = "danger"
	LevelInfo    = "info"
)

// Message is a single flash notification.
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Set appends a flash message to the outgoing cookie.
func Set(c *gin.Context, level, text string) {
	messages := peek(c)
	messages = append(messages, Message{Level: level, Text: text})

	payload, err := json.Marshal(messages)
	if err != nil {
		return
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	c.SetCookie(cookieName, encoded, 300, "/", "", false, true)
}

// Success sets a success-level flash message.
func Success(c *gin.Context, text string) {
	Set(c, LevelSuccess, text)
}

// Error sets an error-level flash message.
func Error(c *gin.Context, text string) {
	Set(c, LevelError, text)
}

// Info sets an info-level flash message.
func Info(c *gin.Context, text string) {
	Set(c, LevelInfo, text)
}

// Take returns any pending flash messages and clears the cookie.
func Take(c *gin.Context) []Message {
	messages := peek(c)
	if len(messages) > 0 {
		c.SetCookie(cookieName, "", -1, "/", "", false, true)
	}
	return messages
}

// peek decodes pending messages without clearing them. Messages set earlier
// in the same request are read back from the outgoing Set-Cookie header so
// consecutive Set calls accumulate.
func peek(c *gin.Context) []Message {
	var raw string
	for _, cookie := range c.Writer.Header()["Set-Cookie"] {
		if parsed, err := http.ParseSetCookie(cookie); err == nil && parsed.Name == cookieName && parsed.MaxAge > 0 {
			raw = parsed.Value
		}
	}
	if raw == "" {
		value, err := c.Cookie(cookieName)
		if err != nil {
			return nil
		}
		raw = value
	}

	payload, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var messages []Message
	if err := json.Unmarshal(payload, &messages); err != nil {
		return nil
	}
	return messages
}
