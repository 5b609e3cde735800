package cli

import "fmt"

type CheckinCmd struct {
	Weight *float64 `help:"Body weight (kg)."`
	Waist  *float64 `help:"Waist measurement (cm)."`
	Energy *int     `help:"Energy level, 1-5."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	if c.Weight == nil && c.Waist == nil && c.Energy == nil {
		return fmt.Errorf("nothing to record; pass --weight, --waist, or --energy")
	}
	if c.Energy != nil && (*c.Energy < 1 || *c.Energy > 5) {
		return fmt.Errorf("energy must be between 1 and 5")
	}

	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}

	tracker.RecordCheckin(c.Weight, c.Waist, c.Energy)
	persist(ctx, tracker)

	s := tracker.State
	fmt.Printf("Check-in saved: weight %s  waist %s  energy %d/5\n",
		formatFloat(s.Weight), formatFloat(s.Waist), s.Energy)
	return nil
}
