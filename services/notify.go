// services/notify.go
package services

import (
	"fmt"

	"salonledger-backend/config"
	"salonledger-backend/models"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ClosingNotifier texts the salon owner a recap when a daily closing is
// created. Delivery failures are logged and never fail the closing.
type ClosingNotifier struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
	log    *logrus.Logger
}

// NewClosingNotifier returns nil when Twilio is not configured; callers
// treat a nil notifier as "notifications off".
func NewClosingNotifier(cfg *config.Config, db *gorm.DB, log *logrus.Logger) *ClosingNotifier {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		return nil
	}
	return &ClosingNotifier{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		from: cfg.TwilioPhoneNumber,
		log:  log,
	}
}

func (n *ClosingNotifier) NotifyOwner(salon models.Salon, closing models.DailyClosing) {
	var owner models.User
	if err := n.db.First(&owner, "id = ?", salon.OwnerID).Error; err != nil {
		n.log.WithField("salon_id", salon.ID).WithError(err).Error("closing recap: owner lookup failed")
		return
	}
	if owner.Phone == nil || *owner.Phone == "" {
		return
	}

	body := fmt.Sprintf("%s closed %s: total %s (cash %s, upi %s)",
		salon.Name,
		closing.Date.String(),
		closing.TotalRevenue.StringFixed(2),
		closing.CashTotal.StringFixed(2),
		closing.UpiTotal.StringFixed(2),
	)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(*owner.Phone)
	params.SetFrom(n.from)
	params.SetBody(body)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		n.log.WithField("salon_id", salon.ID).WithError(err).Error("closing recap: send failed")
		return
	}
	if resp.Sid != nil {
		n.log.WithFields(logrus.Fields{"salon_id": salon.ID, "sid": *resp.Sid}).Info("closing recap sent")
	}
}
