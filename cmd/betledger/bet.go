package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yourusername/bet-ledger/internal/models"
	"github.com/yourusername/bet-ledger/internal/service"
)

const dateLayout = "2006-01-02"

var betCmd = &cobra.Command{
	Use:   "bet",
	Short: "Record and settle bets",
}

type betFlags struct {
	date        string
	sport       string
	competition string
	home        string
	away        string
	betType     string
	bookmaker   string
	description string
	probability float64
	odds        float64
	stake       float64
	outcome     string
	confidence  int
	neutral     bool
	notes       string
}

var addFlags betFlags

var betAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a bet",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		in, err := addFlags.input(a.reports.Location())
		if err != nil {
			return err
		}

		bet, err := a.bets.Create(cmd.Context(), in)
		if err != nil {
			return err
		}
		return printJSON(bet)
	},
}

var settleOutcome string

var betSettleCmd = &cobra.Command{
	Use:   "settle ID [ID...]",
	Short: "Settle pending bets with one outcome",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]uuid.UUID, 0, len(args))
		for _, raw := range args {
			id, err := uuid.Parse(raw)
			if err != nil {
				return fmt.Errorf("invalid bet id %q: %w", raw, err)
			}
			ids = append(ids, id)
		}
		outcome, err := models.ParseOutcome(settleOutcome)
		if err != nil {
			return err
		}

		a, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.bets.Settle(cmd.Context(), ids, outcome)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	f := betAddCmd.Flags()
	f.StringVar(&addFlags.date, "date", "", "Match date (YYYY-MM-DD, default today)")
	f.StringVar(&addFlags.sport, "sport", "", "Sport ID")
	f.StringVar(&addFlags.competition, "competition", "", "Competition ID")
	f.StringVar(&addFlags.home, "home", "", "Home team ID")
	f.StringVar(&addFlags.away, "away", "", "Away team ID")
	f.StringVar(&addFlags.betType, "bet-type", "", "Bet type ID")
	f.StringVar(&addFlags.bookmaker, "bookmaker", "", "Bookmaker ID")
	f.StringVar(&addFlags.description, "description", "", "Bet description")
	f.Float64Var(&addFlags.probability, "prob", 0, "Estimated probability in percent (0-100)")
	f.Float64Var(&addFlags.odds, "odds", 0, "Bookmaker decimal odds")
	f.Float64Var(&addFlags.stake, "stake", 0, "Stake")
	f.StringVar(&addFlags.outcome, "outcome", string(models.OutcomePending), "Outcome (win, loss, push, void, pending)")
	f.IntVar(&addFlags.confidence, "confidence", 3, "Confidence level (1-5)")
	f.BoolVar(&addFlags.neutral, "neutral", false, "Played on neutral ground")
	f.StringVar(&addFlags.notes, "notes", "", "Free-form notes")
	for _, name := range []string{"sport", "competition", "home", "away", "bet-type", "bookmaker", "odds", "stake"} {
		_ = betAddCmd.MarkFlagRequired(name)
	}

	betSettleCmd.Flags().StringVar(&settleOutcome, "outcome", "", "Outcome to apply (win, loss, push, void)")
	_ = betSettleCmd.MarkFlagRequired("outcome")

	betCmd.AddCommand(betAddCmd, betSettleCmd)
}

// input converts the flags into a BetInput. Dates are read in loc.
func (f betFlags) input(loc *time.Location) (service.BetInput, error) {
	var in service.BetInput

	if f.date != "" {
		d, err := time.ParseInLocation(dateLayout, f.date, loc)
		if err != nil {
			return in, fmt.Errorf("invalid --date %q: %w", f.date, err)
		}
		in.Date = d
	}

	refs := []struct {
		flag string
		raw  string
		dst  *uuid.UUID
	}{
		{"sport", f.sport, &in.SportID},
		{"competition", f.competition, &in.CompetitionID},
		{"home", f.home, &in.HomeTeamID},
		{"away", f.away, &in.AwayTeamID},
		{"bet-type", f.betType, &in.BetTypeID},
		{"bookmaker", f.bookmaker, &in.BookmakerID},
	}
	for _, ref := range refs {
		id, err := uuid.Parse(ref.raw)
		if err != nil {
			return in, fmt.Errorf("invalid --%s %q: %w", ref.flag, ref.raw, err)
		}
		*ref.dst = id
	}

	outcome, err := models.ParseOutcome(f.outcome)
	if err != nil {
		return in, err
	}

	in.Description = f.description
	in.EstimatedProbability = f.probability
	in.BookmakerOdds = f.odds
	in.Stake = f.stake
	in.Outcome = outcome
	in.ConfidenceLevel = f.confidence
	in.NeutralGround = f.neutral
	in.Notes = f.notes
	return in, nil
}
