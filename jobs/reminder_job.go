package jobs

import (
	"fmt"
	"log"
	"strings"

	"github.com/Vinish1987/2pcinvestorbook/database"
	"github.com/Vinish1987/2pcinvestorbook/models"
	"github.com/Vinish1987/2pcinvestorbook/notifications"
	"github.com/Vinish1987/2pcinvestorbook/services"
	"github.com/Vinish1987/2pcinvestorbook/utils"
)

// SendOverdueReminder mails the admin a list of the current month's unpaid
// payouts. Scheduled for the day after the payout cutoff; skips silently
// when no admin email is configured or nothing is unpaid.
func SendOverdueReminder() {
	log.Println("Running job: SendOverdueReminder...")

	settings, err := services.GetSettings()
	if err != nil {
		log.Printf("Error loading settings: %v", err)
		return
	}
	if settings == nil || settings.AdminEmail == nil || *settings.AdminEmail == "" {
		log.Println("No admin email configured, skipping overdue reminder.")
		return
	}

	month := utils.CurrentMonthKey()
	var unpaid []models.Payout
	err = database.DB.
		Preload("Investment").
		Where("month_year = ? AND status = ?", month, models.PayoutStatusNotPaid).
		Find(&unpaid).Error
	if err != nil {
		log.Printf("Error checking for unpaid payouts: %v", err)
		return
	}

	if len(unpaid) == 0 {
		log.Println("No unpaid payouts found.")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h1>Pending Payouts for %s</h1><ul>", utils.FormatMonthKey(month))
	for _, p := range unpaid {
		fmt.Fprintf(&b, "<li>%s — %.2f</li>", p.Investment.Name, p.PayoutAmount)
	}
	b.WriteString("</ul>")

	subject := fmt.Sprintf("%d payout(s) still unpaid for %s", len(unpaid), utils.FormatMonthKey(month))
	go notifications.SendEmail("Admin", *settings.AdminEmail, subject, b.String())

	log.Printf("Overdue reminder queued for %d payout(s).", len(unpaid))
}
