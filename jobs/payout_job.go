package jobs

import (
	"log"

	"github.com/Vinish1987/2pcinvestorbook/services"
	"github.com/Vinish1987/2pcinvestorbook/utils"
)

// GenerateMonthlyPayouts materializes the current month's payout rows from
// active investments. The generation is idempotent, so running it again after
// the operator has already opened the payouts page changes nothing.
func GenerateMonthlyPayouts() {
	log.Println("Running job: GenerateMonthlyPayouts...")

	month := utils.CurrentMonthKey()
	if err := services.EnsurePayoutsForMonth(month); err != nil {
		log.Printf("Error generating payouts for %s: %v", month, err)
		return
	}

	log.Printf("Payouts ensured for %s.", month)
}
