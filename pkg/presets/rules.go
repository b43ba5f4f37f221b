package presets

import "github.com/matzehuels/linden/pkg/lsystem"

type succ = lsystem.Successor

// Koch returns a deterministic Koch-style grammar that replaces every F with
// elaboration. A non-empty axiom adds a rule that seeds an empty string.
func Koch(elaboration, axiom string) []lsystem.Rule {
	var rules []lsystem.Rule
	if axiom != "" {
		rules = append(rules, lsystem.MustRule("Axiom", `^$`, []succ{{Threshold: 1, Replacement: axiom}}))
	}
	return append(rules, lsystem.MustRule("Elaboration", `F`, []succ{{Threshold: 1, Replacement: elaboration}}))
}

// KochCurve is the quadratic Koch curve seeded from an empty string.
func KochCurve() []lsystem.Rule {
	return Koch("F+F-F-FF+F+F-F", "F")
}

// Plant1 grows a bushy plant from X with occasional extra-long stems.
func Plant1() []lsystem.Rule {
	return []lsystem.Rule{
		lsystem.MustRule("Growing", `F`, []succ{
			{Threshold: 0.2, Replacement: "FFF"},
			{Threshold: 1, Replacement: "FF"},
		}),
		lsystem.MustRule("Branching", `X`, []succ{
			{Threshold: 1, Replacement: "F-[[X]+X]+F+[[X]-X]"},
		}),
	}
}

// Plant2 is a stochastic plant whose branches lean by small turns.
func Plant2() []lsystem.Rule {
	return []lsystem.Rule{
		lsystem.MustRule("Growing", `F`, []succ{
			{Threshold: 0.2, Replacement: "FFF"},
			{Threshold: 0.3, Replacement: "F[X]F"},
			{Threshold: 0.4, Replacement: "F[+X][-X]F"},
			{Threshold: 1, Replacement: "FF"},
		}),
		lsystem.MustRule("Branching", `X`, []succ{
			{Threshold: 0.2, Replacement: `F.-[[X],+,+X],+,+F,+,+[X][.-X].-F`},
			{Threshold: 0.4, Replacement: `F,-[[X].+.+X].+.+F.+.+[X][,-X],-F`},
			{Threshold: 0.5, Replacement: `F,+[[X].-.-X].-.-F.-.-[X][,+X],+F`},
			{Threshold: 0.8, Replacement: `F.+[[X],-,-X],-,-F,-,-[X][.+X],+F`},
			{Threshold: 1, Replacement: `F[+X][-X]F[+X][-X]F[X]`},
		}),
	}
}

// Tree has left, center, and right branch symbols (Z, X, C) that copy
// themselves into their own sub-branches through a backreference.
func Tree() []lsystem.Rule {
	return []lsystem.Rule{
		lsystem.MustRule("Growing", `F`, []succ{
			{Threshold: 0.1, Replacement: "F"},
			{Threshold: 0.2, Replacement: "FFF"},
			{Threshold: 0.3, Replacement: "F[X]F"},
			{Threshold: 0.4, Replacement: "F[+X][-X]F"},
			{Threshold: 1, Replacement: "FF"},
		}),
		lsystem.MustRule("Left Branch", `(Z)`, []succ{
			{Threshold: 0.4, Replacement: `F+[-\1][\1]+F[+\1][\1]+F`},
			{Threshold: 0.8, Replacement: `F+[+\1][\1]+F[-\1][\1]+F`},
			{Threshold: 0.9, Replacement: `F[-\1][\1]F[+\1][\1]F`},
			{Threshold: 1, Replacement: `F[+\1][\1]F[-\1][\1]F`},
		}),
		lsystem.MustRule("Center Branch", `(X)`, []succ{
			{Threshold: 0.4, Replacement: `FF[,-\1][\1]FF[.+\1][\1]FF`},
			{Threshold: 0.8, Replacement: `FF[.+\1][\1]FF[,-\1][\1]FF`},
			{Threshold: 0.9, Replacement: `FF[-\1][\1]FF[+\1][\1]FF`},
			{Threshold: 1, Replacement: `FF[+\1][\1]FF[-\1][\1]FF`},
		}),
		lsystem.MustRule("Right Branch", `(C)`, []succ{
			{Threshold: 0.4, Replacement: `F,[-\1][\1],F[+\1][\1],F`},
			{Threshold: 0.8, Replacement: `F,[+\1][\1],F[-\1][\1],F`},
			{Threshold: 0.9, Replacement: `F[-\1][\1]F[+\1][\1]F`},
			{Threshold: 1, Replacement: `F[+\1][\1]F[-\1][\1]F`},
		}),
	}
}

// Bush3D grows a branching shrub in three dimensions for use with [Std3D].
func Bush3D() []lsystem.Rule {
	return []lsystem.Rule{
		lsystem.MustRule("Growing", `F`, []succ{
			{Threshold: 0.5, Replacement: "FF"},
			{Threshold: 1, Replacement: "F"},
		}),
		lsystem.MustRule("Branching", `X`, []succ{
			{Threshold: 0.35, Replacement: `F[&X][^X]+X`},
			{Threshold: 0.7, Replacement: `F[\X][/X]-X`},
			{Threshold: 1, Replacement: `F[&+X][\-X][^X]`},
		}),
	}
}
