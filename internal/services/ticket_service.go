package services

import (
	"strings"

	"github.com/vesoapp/veso-backend/internal/models"
)

// Compile-time check to ensure TicketServiceImpl implements TicketService
var _ TicketService = (*TicketServiceImpl)(nil)

// TicketServiceImpl applies the suffix-matching claim rule to a ticket.
type TicketServiceImpl struct{}

// NewTicketService creates a new TicketServiceImpl.
func NewTicketService() *TicketServiceImpl {
	return &TicketServiceImpl{}
}

// Check collects every winning match for the ticket across all provinces,
// tiers and numbers in the set. A ticket shorter than two digits after
// normalization cannot match anything and returns an empty list.
func (s *TicketServiceImpl) Check(ticketNumber string, results models.ResultSet) []models.WinningMatch {
	winnings := []models.WinningMatch{}
	ticket := normalizeTicket(ticketNumber)
	if len(ticket) < 2 {
		return winnings
	}

	for _, result := range results {
		for tier, numbers := range result.Prizes {
			for _, prizeNumber := range numbers {
				digits, matched := suffixMatch(ticket, prizeNumber)
				if !matched {
					continue
				}
				winnings = append(winnings, models.WinningMatch{
					Province:      result.Name,
					Prize:         tier,
					PrizeNumber:   prizeNumber,
					YourNumber:    ticket,
					MatchedDigits: digits,
					Amount:        models.PrizeAmount(tier, digits),
				})
			}
		}
	}

	return winnings
}

// suffixMatch returns the largest d in [2, min(len(ticket), len(prize))]
// for which the trailing d digits of both strings are equal.
func suffixMatch(ticket, prize string) (int, bool) {
	max := len(ticket)
	if len(prize) < max {
		max = len(prize)
	}
	for d := max; d >= 2; d-- {
		if ticket[len(ticket)-d:] == prize[len(prize)-d:] {
			return d, true
		}
	}
	return 0, false
}

// normalizeTicket strips everything that is not an ASCII digit.
func normalizeTicket(ticketNumber string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(ticketNumber) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
