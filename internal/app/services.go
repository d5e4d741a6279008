package app

import (
	"go.uber.org/fx"

	"github.com/SatyaSire/corporatepm/config"
	"github.com/SatyaSire/corporatepm/internal/service/chat"
	"github.com/SatyaSire/corporatepm/internal/service/contact"
	"github.com/SatyaSire/corporatepm/internal/service/notify"
	"github.com/SatyaSire/corporatepm/pkg/email"
	"github.com/SatyaSire/corporatepm/pkg/sms"
	"github.com/SatyaSire/corporatepm/pkg/supabase"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideNotifyService,
		ProvideContactService,
		ProvideChatService,
	),
)

// ProvideNotifyService assembles the owner-alert fan-out. Channels that
// are disabled in config skip themselves at send time, so all of them
// are always registered.
func ProvideNotifyService(cfg *config.Config, emailCli *email.Client, smsCli *sms.Client) notify.Service {
	return notify.New(
		notify.LogChannel{},
		notify.EmailChannel{Client: emailCli, To: cfg.Email.To},
		notify.SMSChannel{
			Client:     smsCli,
			Mobile:     cfg.SMS.AlertMobile,
			TemplateID: cfg.SMS.SMSIR.TemplateID,
		},
	)
}

func ProvideContactService(store *supabase.Client, notifier notify.Service) contact.Service {
	return contact.New(store, notifier)
}

func ProvideChatService(cfg *config.Config) chat.Service {
	return chat.New(cfg.Chat)
}
