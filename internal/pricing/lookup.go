package pricing

import (
	"fmt"

	"github.com/printhub/printhub-backend/pkg/enums"
)

// Resolution describes how a lookup settled on its row. Duplicates counts other active
// rows sharing the selected row's full key; any non-zero value is a catalog defect.
type Resolution struct {
	Dimension  string
	Criteria   string
	RowID      int64
	Duplicates int
}

// Ambiguous reports whether the catalog held more than one row for the key.
func (r Resolution) Ambiguous() bool {
	return r.Duplicates > 0
}

// PrintingCriteria selects a printing row. A nil MachineID matches every machine.
type PrintingCriteria struct {
	SheetSize enums.SheetSize
	ColorMode enums.ColorMode
	MachineID *int64
}

func (c PrintingCriteria) String() string {
	if c.MachineID != nil {
		return fmt.Sprintf("%s/%s/machine %d", c.SheetSize, c.ColorMode, *c.MachineID)
	}
	return fmt.Sprintf("%s/%s", c.SheetSize, c.ColorMode)
}

// PaperCriteria selects a paper row.
type PaperCriteria struct {
	SheetSize enums.SheetSize
	GSM       int
	PaperType enums.PaperType
}

func (c PaperCriteria) String() string {
	return fmt.Sprintf("%s/%dgsm/%s", c.SheetSize, c.GSM, c.PaperType)
}

// MaterialCriteria selects a material row.
type MaterialCriteria struct {
	MaterialType enums.MaterialType
	Unit         enums.MaterialUnit
}

func (c MaterialCriteria) String() string {
	return fmt.Sprintf("%s/%s", c.MaterialType, c.Unit)
}

// FindPrintingPrice matches sheet size and colour mode exactly. With a machine the
// lowest row ID wins; without one the cheapest per-side row wins, ties to the lowest ID.
func FindPrintingPrice(rows []PrintingPrice, criteria PrintingCriteria) (PrintingPrice, Resolution, error) {
	res := Resolution{Dimension: DimensionPrinting, Criteria: criteria.String()}

	var (
		chosen *PrintingPrice
		found  bool
	)
	for i := range rows {
		row := &rows[i]
		if row.SheetSize != criteria.SheetSize || row.ColorMode != criteria.ColorMode {
			continue
		}
		if criteria.MachineID != nil && (row.MachineID == nil || *row.MachineID != *criteria.MachineID) {
			continue
		}
		if !found || betterPrintingRow(*row, *chosen, criteria.MachineID == nil) {
			chosen = row
			found = true
		}
	}
	if !found {
		return PrintingPrice{}, res, noPrice(DimensionPrinting, res.Criteria)
	}

	for i := range rows {
		row := rows[i]
		if row.ID == chosen.ID || row.SheetSize != chosen.SheetSize || row.ColorMode != chosen.ColorMode {
			continue
		}
		if sameMachine(row.MachineID, chosen.MachineID) {
			res.Duplicates++
		}
	}
	res.RowID = chosen.ID
	return *chosen, res, nil
}

func betterPrintingRow(candidate, current PrintingPrice, cheapest bool) bool {
	if cheapest && !candidate.PerSide.Equal(current.PerSide) {
		return candidate.PerSide.LessThan(current.PerSide)
	}
	return candidate.ID < current.ID
}

func sameMachine(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// FindPaperPrice matches sheet size, weight and paper type exactly.
func FindPaperPrice(rows []PaperPrice, criteria PaperCriteria) (PaperPrice, Resolution, error) {
	res := Resolution{Dimension: DimensionPaper, Criteria: criteria.String()}
	matches := 0
	var chosen PaperPrice
	for _, row := range rows {
		if row.SheetSize != criteria.SheetSize || row.GSM != criteria.GSM || row.PaperType != criteria.PaperType {
			continue
		}
		if matches == 0 || row.ID < chosen.ID {
			chosen = row
		}
		matches++
	}
	if matches == 0 {
		return PaperPrice{}, res, noPrice(DimensionPaper, res.Criteria)
	}
	res.RowID = chosen.ID
	res.Duplicates = matches - 1
	return chosen, res, nil
}

// FindMaterialPrice matches material type and billing unit exactly.
func FindMaterialPrice(rows []MaterialPrice, criteria MaterialCriteria) (MaterialPrice, Resolution, error) {
	res := Resolution{Dimension: DimensionMaterial, Criteria: criteria.String()}
	matches := 0
	var chosen MaterialPrice
	for _, row := range rows {
		if row.MaterialType != criteria.MaterialType || row.Unit != criteria.Unit {
			continue
		}
		if matches == 0 || row.ID < chosen.ID {
			chosen = row
		}
		matches++
	}
	if matches == 0 {
		return MaterialPrice{}, res, noPrice(DimensionMaterial, res.Criteria)
	}
	res.RowID = chosen.ID
	res.Duplicates = matches - 1
	return chosen, res, nil
}

// FindFinishings resolves every requested finishing id, in request order, ignoring
// repeated ids. Any id missing from the catalog fails the whole lookup.
func FindFinishings(rows []Finishing, ids []int64) ([]Finishing, error) {
	byID := make(map[int64]Finishing, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	seen := make(map[int64]struct{}, len(ids))
	out := make([]Finishing, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		row, ok := byID[id]
		if !ok {
			return nil, noPrice(DimensionFinishing, fmt.Sprintf("id %d", id))
		}
		out = append(out, row)
	}
	return out, nil
}
