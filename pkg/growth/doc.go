// Package growth models referral-driven hiring growth and answers two
// planning questions: how long until a hiring target is met, and how large a
// referral bonus is needed to meet it.
//
// # Simulation Model
//
// A [Simulator] steps a population of referrer slots through discrete days.
// Each slot succeeds at one referral per day with probability p and retires
// once it reaches its capacity. [Simulator.Simulate] draws Bernoulli trials;
// [Simulator.SimulateExpected] replaces each trial with its expectation p,
// producing a deterministic trace used as the probe function inside the
// binary searches.
//
// # Optimization
//
// [Simulator.DaysToTarget] binary-searches the number of days for a fixed
// probability. [Optimizer.MinBonusForTarget] binary-searches the bonus amount
// given an [AdoptionFunc], a caller-supplied function mapping bonus dollars to
// adoption probability. The function is assumed monotonically non-decreasing;
// each returned value is checked against [0, 1] but monotonicity is not
// verified. "Impossible" outcomes are ordinary return values, not errors.
//
// # Determinism
//
// Stochastic runs accept a seed through [Config] for reproducibility. The
// expectation variant and both searches are fully deterministic.
package growth
