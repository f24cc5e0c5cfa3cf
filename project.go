package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"coastfire/internal/engine"
	"coastfire/internal/mailer"
	"coastfire/internal/model"
)

type projectFlags struct {
	currentAge     int
	currentSavings float64
	retirementAge  int
	desiredIncome  float64
	withdrawalRate float64
	returnRate     float64
	asJSON         bool
}

func newProjectCmd() *cobra.Command {
	var f projectFlags
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print a Coast FIRE projection",
		Example: "  coastfire project --current-age 30 --current-savings 50000 " +
			"--retirement-age 60 --desired-income 80000",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, res, err := engine.Calculate(model.CalculatorForm{
				CurrentAge:     model.Number(float64(f.currentAge)),
				CurrentSavings: model.Number(f.currentSavings),
				RetirementAge:  model.Number(float64(f.retirementAge)),
				DesiredIncome:  model.Number(f.desiredIncome),
				WithdrawalRate: model.Number(f.withdrawalRate),
				ReturnRate:     model.Number(f.returnRate),
			})
			if err != nil {
				return err
			}
			if f.asJSON {
				out, err := json.MarshalIndent(model.CalculateResponse{Inputs: in, Result: res}, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return err
			}
			return printProjection(cmd.OutOrStdout(), res)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&f.currentAge, "current-age", 0, "current age in years")
	fl.Float64Var(&f.currentSavings, "current-savings", 0, "invested savings today")
	fl.IntVar(&f.retirementAge, "retirement-age", 0, "target retirement age")
	fl.Float64Var(&f.desiredIncome, "desired-income", 0, "desired annual income in retirement")
	fl.Float64Var(&f.withdrawalRate, "withdrawal-rate", engine.DefaultWithdrawalRatePct, "safe withdrawal rate, percent")
	fl.Float64Var(&f.returnRate, "return-rate", engine.DefaultExpectedReturnPct, "expected annual return, percent")
	fl.BoolVar(&f.asJSON, "json", false, "print JSON instead of a table")
	for _, name := range []string{"current-age", "current-savings", "retirement-age", "desired-income"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func printProjection(w io.Writer, res model.ProjectionResult) error {
	status := "not yet"
	if res.IsCoastFire {
		status = "reached"
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "FIRE number\t%s\n", mailer.FormatUSD(res.FireNumber))
	fmt.Fprintf(tw, "Coast FIRE number\t%s\n", mailer.FormatUSD(res.CoastFireNumber))
	fmt.Fprintf(tw, "Future value of savings\t%s\n", mailer.FormatUSD(res.FutureValue))
	fmt.Fprintf(tw, "Additional needed\t%s\n", mailer.FormatUSD(res.AdditionalNeeded))
	fmt.Fprintf(tw, "Monthly income\t%s\n", mailer.FormatUSD(res.MonthlyIncome))
	fmt.Fprintf(tw, "Years to retirement\t%d\n", res.YearsToRetirement)
	fmt.Fprintf(tw, "Coast FIRE\t%s\n", status)
	return tw.Flush()
}
