// Package study models a dynamic-optimization benchmark study: a set of
// algorithms evaluated on a set of benchmarks, with three tables indexed
// [algorithm][benchmark]:
//
//   - Recovery — average iterations needed to recover after a change (≥ 1)
//   - Best     — best pre-change fitness (the optimum the algorithm returns to)
//   - Initial  — simulated fitness right after the change (the recovery start)
//
// Studies come from the built-in dataset (Default), from YAML (Load/Parse)
// or from literal tables (New). They are immutable once built; every
// accessor returns copies.
//
// Traces joins a study with the curve package: one synthetic recovery
// curve per algorithm for a chosen benchmark.
package study
