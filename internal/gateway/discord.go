package gateway

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/miaomiao/deepsearch/internal/agent"
)

// discordMessageLimit is Discord's hard cap per message.
const discordMessageLimit = 2000

// Discord answers messages in channels and DMs the bot can see.
type Discord struct {
	session *discordgo.Session
	brain   agent.Brain
	botID   string
	done    chan struct{}
}

func NewDiscord(token string, brain agent.Brain) (*Discord, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	return &Discord{
		session: session,
		brain:   brain,
		done:    make(chan struct{}),
	}, nil
}

func (d *Discord) Start() error {
	d.session.AddHandler(d.onMessage)

	if err := d.session.Open(); err != nil {
		return err
	}
	d.botID = d.session.State.User.ID
	log.Printf("discord: connected as %s", d.session.State.User.Username)

	<-d.done
	return nil
}

func (d *Discord) Send(chatID string, text string) error {
	for _, chunk := range splitMessage(text, discordMessageLimit) {
		if _, err := d.session.ChannelMessageSend(chatID, chunk); err != nil {
			return err
		}
	}
	return nil
}

func (d *Discord) Stop() error {
	close(d.done)
	return d.session.Close()
}

func (d *Discord) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == d.botID || m.Author.Bot {
		return
	}
	if m.Content == "" {
		return
	}

	log.Printf("discord: [%s] %s", m.Author.Username, m.Content)
	_ = s.ChannelTyping(m.ChannelID)

	response, err := d.brain.Think(context.Background(), m.ChannelID, m.Content)
	if err != nil {
		log.Printf("discord: brain error: %v", err)
		response = "I ran into a problem answering that. Please try again."
	}

	if err := d.Send(m.ChannelID, response); err != nil {
		log.Printf("discord: send failed: %v", err)
	}
}

// splitMessage cuts text into chunks under the given limit, preferring
// newline boundaries so markdown stays readable.
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(text) > limit {
		cut := limit
		for i := limit - 1; i > limit/2; i-- {
			if text[i] == '\n' {
				cut = i
				break
			}
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
