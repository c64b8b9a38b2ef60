package smtp_client

import (
	"errors"
	"log/slog"
	"net/textproto"
	"sync/atomic"

	"github.com/knadh/smtppool"
	messagingTypes "github.com/parthoooo/story-teller/pkg/messaging/types"
)

func (sc *SmtpClients) SendMail(
	to []string,
	subject string,
	htmlContent string,
	overrides *messagingTypes.HeaderOverrides,
) error {
	// sends run from request goroutines, the round-robin counter must be atomic
	counter := atomic.AddUint64(&sc.counter, 1)
	if len(sc.connectionPool) < 1 {
		sc.connectionPool = initConnectionPool(sc.servers)
		if len(sc.connectionPool) < 1 {
			return errors.New("no servers defined")
		}
	}

	index := int(counter % uint64(len(sc.connectionPool)))
	selectedServer := sc.connectionPool[index]

	from := sc.servers.From
	sender := sc.servers.Sender
	replyTo := sc.servers.ReplyTo

	if overrides != nil {
		if overrides.From != "" {
			from = overrides.From
		}
		if overrides.Sender != "" {
			sender = overrides.Sender
		}

		if overrides.NoReplyTo {
			replyTo = []string{}
		} else if len(overrides.ReplyTo) > 0 {
			replyTo = overrides.ReplyTo
		}
	}

	e := smtppool.Email{
		To:      to,
		From:    from,
		Sender:  sender,
		ReplyTo: replyTo,
		Subject: subject,
		HTML:    []byte(htmlContent),
		Headers: textproto.MIMEHeader{},
	}
	err := selectedServer.Send(e)

	if err != nil {
		// close and try to reconnect
		slog.Error("error when trying to send email", slog.String("error", err.Error()))

		pool, errReconnect := connectToPool(sc.servers.Servers[index])
		if errReconnect != nil {
			slog.Error("cannot reconnect pool", slog.String("error", errReconnect.Error()), slog.String("server", sc.servers.Servers[index].Host))
		} else {
			slog.Info("reconnected to pool", slog.String("server", sc.servers.Servers[index].Host))
			sc.connectionPool[index] = pool
		}
	}
	return err
}
