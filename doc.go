// Package hippotools is a toolkit for constraint-based analysis of
// genome-scale metabolic models — from core model primitives to flux
// balance analysis, expression integration and solution enumeration.
//
// What does hippotools provide?
//
//	A thread-safe, pure-Go library that brings together:
//		• Core primitives: metabolites, reactions, genes & GPR rules, mutated safely under locks
//		• Model I/O: JSON, YAML, SBML and gob round-trips with format inference
//		• Flux analysis: FBA, FVA, parsimonious FBA, gene & reaction knockouts
//		• Expression integration: count normalization (RPKM/FPKM/TPM/CPM) and
//		  qualitative reaction weights for iMAT
//		• iMAT: mixed-integer flux activation/suppression consistent with expression
//		• Enumeration: icut, maxdist and diversity iterators over alternative optima
//		• Sampling: hit-and-run flux sampling with parallel chains
//		• Network views: bipartite and projected graphs, dead-ends, choke points
//
// Everything is organized under focused subpackages:
//
//	model/      — Model, Reaction, Metabolite, Gene types & thread-safe primitives
//	modelio/    — serialization between model formats
//	solver/     — LP/MILP solving on gonum's simplex
//	fba/        — flux balance analysis, variability, knockouts
//	expression/ — RNA-seq normalization and reaction-weight derivation
//	imat/       — expression-consistent flux activation (iMAT)
//	diversity/  — enumeration of alternative optima & consensus essentiality
//	sampling/   — ACHR and parallel hit-and-run flux samplers
//	network/    — graph projections of the metabolic network
//	metabolite/ — chemical formulas, mass and charge balance
//
// A model flows through the toolkit: read it with modelio, derive reaction
// weights from expression data, constrain it with imat, then enumerate,
// sample, or probe essentiality with diversity and fba.
//
//	go get github.com/Braden-Griebel/hippotools
package hippotools
