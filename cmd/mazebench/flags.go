package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazebench/config"
	"github.com/katalvlaran/mazebench/mdp"
)

// addMDPFlags registers the solver parameter flags. Defaults shown are the
// built-in ones; an unset flag leaves the configured value alone.
func addMDPFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64("discount", mdp.DefaultDiscount, "discount factor γ in [0,1)")
	f.Float64("reward", mdp.DefaultLivingReward, "living reward per step")
	f.Float64("noise", mdp.DefaultNoise, "probability of slipping to another open direction")
	f.Float64("theta", mdp.DefaultTheta, "convergence threshold on the max value change")
	f.Int("max-iter", mdp.DefaultMaxIterations, "iteration guard per solver loop")
	f.Float64("initial-value", 0, "initial value of every non-goal cell")
	f.Float64("goal-reward", 10, "value of the goal cell")
}

func applyMDPFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	floats := map[string]*float64{
		"discount":      &cfg.MDP.Discount,
		"reward":        &cfg.MDP.LivingReward,
		"noise":         &cfg.MDP.Noise,
		"theta":         &cfg.MDP.Theta,
		"initial-value": &cfg.MDP.InitialValue,
		"goal-reward":   &cfg.MDP.GoalReward,
	}
	for name, dst := range floats {
		if !f.Changed(name) {
			continue
		}
		v, err := f.GetFloat64(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	if f.Changed("max-iter") {
		v, err := f.GetInt("max-iter")
		if err != nil {
			return err
		}
		cfg.MDP.MaxIterations = v
	}
	return nil
}
