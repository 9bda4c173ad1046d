// Package voltkern is a hybrid physics + learned-residual voltage predictor
// for multi-phase distribution networks — from admittance assembly to
// kernel-based landmark interpolation.
//
// 🚀 What is voltkern?
//
//	A deterministic, numerics-first library that brings together:
//		• Network model: per-phase buses, branches, zones & component scans
//		• Admittance: complex Y-bus assembly with shunt handling
//		• Kernels: regularized Green kernels (L+µI)⁻¹ per phase + combining
//		• Landmarks: pivoted-Cholesky greedy selection, zone quotas, swap refinement
//		• Nyström: interpolation weights W = K_UR·K_RR⁻¹ with identity self-checks
//		• Prediction: residual targets, feature extraction, V̂ = Vphys + W·r̂
//
// ✨ Why choose voltkern?
//
//   - Deterministic by construction – fixed loop orders, lower-index tie-breaks
//   - Fail-fast numerics – sentinel errors with condition estimates, no silent NaNs
//   - Pure Go linear algebra via gonum – no cgo, no solver daemons
//   - Learner-agnostic – any residual model satisfying a two-method interface
//
// Under the hood, everything is organized per pipeline stage:
//
//	netmodel/   — Bus, Branch, Phase, Network holder + adjacency & components
//	admittance/ — complex Y-bus builder per phase
//	kernel/     — Laplacian extraction, Green kernels, multi-phase combining
//	landmark/   — greedy landmark selection with quotas & swap refinement
//	nystrom/    — interpolation operator with landmark-identity verification
//	predictor/  — residual targets, features, learners & hybrid recombination
//	pipeline/   — one-call scenario orchestration + YAML configuration
//	netbuild/   — deterministic synthetic networks for tests & benchmarks
//
// Quick ASCII example:
//
//	    0───1───2───3───4───5
//	            ▲
//	          slack
//
//	a six-bus radial feeder; two landmarks land on the electrically
//	farthest ends, the rest is interpolated.
//
// Dive into the per-package docs and example_test.go files for end-to-end
// walkthroughs.
//
//	go get github.com/voltkern/voltkern
package voltkern
