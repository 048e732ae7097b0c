package cli

import (
	"fmt"
	"strings"

	"github.com/RedPaladin7/pokerhands/api"
	"github.com/RedPaladin7/pokerhands/poker"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newDealCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "deal <name,name,...>",
		Short:   "Deal one round to the named players and show the winner",
		Example: "  pokerhands deal Alice,Bob,Carol --seed 42",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commandConfig(cmd)
			if err != nil {
				return err
			}
			names := api.ParsePlayerNames(strings.Join(args, ","))

			opts := []poker.RoundOption{poker.WithMaxPlayers(cfg.MaxPlayers)}
			if cfg.Seed != 0 {
				opts = append(opts, poker.WithSeed(cfg.Seed))
			}
			round, err := poker.NewRound(names, opts...)
			if err != nil {
				return err
			}

			out, err := renderRound(round)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "eval <card> <card> <card> <card> <card>",
		Short:   "Rank a single five-card hand",
		Example: "  pokerhands eval As Ks Qs Js Ts",
		Args:    cobra.ExactArgs(poker.HandSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := commandConfig(cmd); err != nil {
				return err
			}
			cards, err := poker.ParseCards(args)
			if err != nil {
				return err
			}
			hand := &poker.Hand{Cards: cards}
			if err := poker.EvaluateHand(hand); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderHand(hand))
			return nil
		},
	}
}

func renderRound(round *poker.Round) (string, error) {
	data := pterm.TableData{{"Player", "Cards", "Hand", "High Cards", "Winner"}}
	for _, p := range round.Players {
		winner := ""
		if p.IsWinner() {
			winner = pterm.LightGreen("WINNER")
		}
		data = append(data, []string{
			pterm.LightCyan(p.Name),
			formatCards(p.Hand.Cards),
			p.Hand.Rank.String(),
			formatValues(p.Hand.HighCards),
			winner,
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", fmt.Errorf("rendering round: %w", err)
	}
	footer := fmt.Sprintf("round %s (seed %d) won by %s\n", round.ID, round.Seed, strings.Join(round.WinnerNames(), ", "))
	return table + "\n" + footer, nil
}

func renderHand(hand *poker.Hand) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintfln("%s\n%s\nhigh cards: %s\nscore: %d (%s)",
		formatCards(hand.Cards),
		pterm.LightYellow(hand.Rank.String()),
		formatValues(hand.HighCards),
		hand.Score, hand.Description)
	return pbox.WithTitle(pterm.LightGreen("|HAND|")).WithTitleTopCenter().Sprint(body) + "\n"
}

func formatCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Value.Symbol() + c.Suit.Unicode()
	}
	return strings.Join(parts, " ")
}

func formatValues(values []poker.CardValue) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Symbol()
	}
	return strings.Join(parts, " ")
}
