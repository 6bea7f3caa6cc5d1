// Package expression converts RNA-seq gene expression data between
// normalization units and derives qualitative reaction weights for
// expression-constrained flux analysis.
//
// Expression lives in a Table: a samples × genes matrix of float64 with
// labeled rows and columns, backed by a gonum dense matrix.
//
// Normalization conversions (all return new Tables):
//
//   - CountToRPKM / CountToFPKM: reads (fragments) per kilobase per million
//     mapped reads. FPKM shares the RPKM arithmetic; the unit differs only
//     in what a raw count denotes.
//   - CountToTPM: transcripts per million.
//   - CountToCPM: counts per million (no length correction).
//   - RPKMToTPM / FPKMToTPM: renormalize an already length-corrected table.
//
// When the count table and the feature-length map disagree on the gene set,
// the conversion proceeds over the intersection and reports the dropped
// genes.
//
// Weight derivation:
//
//   - Aggregate: collapse samples to one value per gene (median by default).
//   - ToQualitative: trinarize aggregated expression to −1/0/+1 by
//     percentile thresholds — genes below the low percentile are lowly
//     expressed (−1), above the high percentile highly expressed (+1).
//   - GeneToReactionWeights: fold gene weights through each reaction's GPR
//     rule (AND → min, OR → max) into reaction weights for imat.
//
// Errors (sentinel):
//
//	ErrDimensionMismatch - data length does not match samples × genes.
//	ErrDuplicateLabel    - a sample or gene label repeats.
//	ErrNoGenesInCommon   - counts and feature lengths share no genes.
//	ErrBadProportion     - percentile thresholds outside (0, 1) or inverted.
//	ErrBadCSV            - a CSV input failed to parse.
package expression
