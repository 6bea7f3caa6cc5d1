// Count normalization conversions.
package expression

import "sort"

// CountToRPKM normalizes raw counts to reads per kilobase per million:
//
//	rpkm[s][g] = count[s][g] / length[g] / totalCount[s] · 1e9
//
// Genes missing from featureLength (or vice versa) are dropped; the dropped
// table genes are returned sorted. Returns ErrNoGenesInCommon when nothing
// survives the intersection.
// Complexity: O(S·G)
func (t *Table) CountToRPKM(featureLength map[string]float64) (*Table, []string, error) {
	aligned, dropped, err := t.alignGenes(featureLength)
	if err != nil {
		return nil, nil, err
	}

	// Library sizes come from the raw counts of the surviving genes.
	totals := aligned.rowTotals()

	data := make([]float64, 0, len(aligned.samples)*len(aligned.genes))
	for i := range aligned.samples {
		for _, g := range aligned.genes {
			v := aligned.data.At(i, aligned.geneIdx[g])
			data = append(data, v/featureLength[g]/totals[i]*1e9)
		}
	}

	return aligned.withData(data), dropped, nil
}

// CountToFPKM normalizes fragment counts to FPKM. The arithmetic is the
// RPKM arithmetic; a fragment is one cDNA molecule, possibly represented by
// a read pair.
func (t *Table) CountToFPKM(featureLength map[string]float64) (*Table, []string, error) {
	return t.CountToRPKM(featureLength)
}

// CountToTPM normalizes raw counts to transcripts per million:
// length-correct first, then scale each sample to one million.
// Gene-set mismatches behave as in CountToRPKM.
// Complexity: O(S·G)
func (t *Table) CountToTPM(featureLength map[string]float64) (*Table, []string, error) {
	aligned, dropped, err := t.alignGenes(featureLength)
	if err != nil {
		return nil, nil, err
	}

	lengthNorm := make([]float64, 0, len(aligned.samples)*len(aligned.genes))
	for i := range aligned.samples {
		for _, g := range aligned.genes {
			lengthNorm = append(lengthNorm, aligned.data.At(i, aligned.geneIdx[g])/featureLength[g])
		}
	}
	ln := aligned.withData(lengthNorm)
	totals := ln.rowTotals()

	data := make([]float64, 0, len(ln.samples)*len(ln.genes))
	for i := range ln.samples {
		for j := range ln.genes {
			data = append(data, ln.data.At(i, j)/totals[i]*1e6)
		}
	}

	return ln.withData(data), dropped, nil
}

// CountToCPM normalizes raw counts to counts per million, with no length
// correction.
// Complexity: O(S·G)
func (t *Table) CountToCPM() *Table {
	totals := t.rowTotals()
	data := make([]float64, 0, len(t.samples)*len(t.genes))
	for i := range t.samples {
		scale := totals[i] / 1e6
		for j := range t.genes {
			data = append(data, t.data.At(i, j)/scale)
		}
	}

	return t.withData(data)
}

// RPKMToTPM rescales an RPKM table so every sample sums to one million.
// Complexity: O(S·G)
func (t *Table) RPKMToTPM() *Table {
	totals := t.rowTotals()
	data := make([]float64, 0, len(t.samples)*len(t.genes))
	for i := range t.samples {
		for j := range t.genes {
			data = append(data, t.data.At(i, j)/totals[i]*1e6)
		}
	}

	return t.withData(data)
}

// FPKMToTPM rescales an FPKM table to TPM; identical to RPKMToTPM.
func (t *Table) FPKMToTPM() *Table {
	return t.RPKMToTPM()
}

// alignGenes intersects the table's genes with the feature-length map,
// returning the restricted table and the sorted list of dropped genes.
func (t *Table) alignGenes(featureLength map[string]float64) (*Table, []string, error) {
	var kept, dropped []string
	for _, g := range t.genes {
		if _, ok := featureLength[g]; ok {
			kept = append(kept, g)
		} else {
			dropped = append(dropped, g)
		}
	}
	if len(kept) == 0 {
		return nil, nil, ErrNoGenesInCommon
	}
	sort.Strings(dropped)
	if len(dropped) == 0 {
		return t, nil, nil
	}

	return t.subset(kept), dropped, nil
}

// rowTotals sums each sample row.
func (t *Table) rowTotals() []float64 {
	totals := make([]float64, len(t.samples))
	for i := range t.samples {
		for j := range t.genes {
			totals[i] += t.data.At(i, j)
		}
	}

	return totals
}
