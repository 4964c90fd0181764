package main

import (
	"math/rand"
	"strings"
	"time"

	lorem "github.com/drhodes/golorem"

	chatmaterial "git.sr.ht/~gioverse/linktext/widget/material"
)

// GenConversation generates a plausible conversation of count
// messages between a handful of senders, sprinkling links into the
// text so that every interaction is demonstrable.
func GenConversation(count int) []chatmaterial.MessageConfig {
	var (
		local    = lorem.Word(3, 10)
		senders  = []string{local, lorem.Word(3, 10), lorem.Word(3, 10)}
		messages = make([]chatmaterial.MessageConfig, 0, count)
	)
	for i := 0; i < count; i++ {
		sender := senders[rand.Intn(len(senders))]
		msg := chatmaterial.MessageConfig{
			Sender:  sender,
			Content: genContent(),
			SentAt:  time.Now().Add(time.Minute * time.Duration(-(count - i))),
			Local:   sender == local,
		}
		// Local messages can be deleted; an occasional remote message
		// is a tip.
		msg.Deletable = msg.Local
		if !msg.Local && rand.Intn(8) == 0 {
			msg.Tip = true
			msg.Content = "Tip: " + msg.Content
		}
		messages = append(messages, msg)
	}
	return messages
}

// genContent produces message text, most of it containing a link.
func genContent() string {
	content := lorem.Sentence(3, 12)
	switch rand.Intn(3) {
	case 0:
		return content
	case 1:
		return strings.TrimSuffix(content, ".") + " " + lorem.Url()
	default:
		return lorem.Url() + " " + content
	}
}
