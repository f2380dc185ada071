package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/printhub/printhub-backend/pkg/enums"
)

// ValidateGSM checks a paper weight against the template's allowed weights and,
// when capabilities are given, against what the shop can run on the sheet size.
func ValidateGSM(tpl Template, caps []PaperCapability, size enums.SheetSize, gsm int) error {
	if gsm <= 0 {
		return missingField("gsm", "gsm must be positive")
	}

	if len(tpl.AllowedGSM) > 0 {
		allowed := false
		for _, v := range tpl.AllowedGSM {
			if v == gsm {
				allowed = true
				break
			}
		}
		if !allowed {
			return missingField("gsm", fmt.Sprintf("gsm %d is not offered for this template; choose one of %s", gsm, joinInts(tpl.AllowedGSM)))
		}
	} else {
		if tpl.MinGSM != nil && gsm < *tpl.MinGSM {
			return missingField("gsm", fmt.Sprintf("gsm %d is below the template minimum of %d", gsm, *tpl.MinGSM))
		}
		if tpl.MaxGSM != nil && gsm > *tpl.MaxGSM {
			return missingField("gsm", fmt.Sprintf("gsm %d is above the template maximum of %d", gsm, *tpl.MaxGSM))
		}
	}

	if len(caps) == 0 {
		return nil
	}
	capability, ok := findCapability(caps, size)
	if !ok {
		return missingField("sheet_size", fmt.Sprintf("shop does not print on %s", size))
	}
	if gsm < capability.MinGSM || (capability.MaxGSM > 0 && gsm > capability.MaxGSM) {
		return missingField("gsm", fmt.Sprintf("shop prints %s between %d and %d gsm, got %d", size, capability.MinGSM, capability.MaxGSM, gsm))
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
