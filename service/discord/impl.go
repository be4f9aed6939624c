package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/base/goroutine"
	"github.com/bitwhips/washapi/base/log"
	"github.com/bitwhips/washapi/domain"
)

type Config struct {
	BotKey          string
	ChannelId       string
	UrgentChannelId string
	UrgentMention   string
}

type impl struct {
	config  Config
	discord *discordgo.Session
}

// New connects a discord bot used for operational notifications.
// Urgent messages go to a dedicated channel and mention the ops role.
func New(config Config) domain.Notifier {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", config.BotKey))
	if err != nil {
		panic("failed to connect to discord")
	}

	return &impl{config, discord}
}

func (im *impl) Notify(c ctx.Ctx, message string) {
	// fire-and-forget; a slow or failing discord call never blocks a wash
	goroutine.RecoverableGo(func() {
		im.send(c, im.config.ChannelId, message)
	})
}

func (im *impl) NotifyUrgent(c ctx.Ctx, message string) {
	if im.config.UrgentMention != "" {
		message = fmt.Sprintf("%s %s", im.config.UrgentMention, message)
	}
	im.send(c, im.config.UrgentChannelId, message)
}

func (im *impl) send(c ctx.Ctx, channelId, message string) {
	if _, err := im.discord.ChannelMessageSend(channelId, message); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"channelId": channelId,
		}).Error("discord.ChannelMessageSend failed")
	}
}
