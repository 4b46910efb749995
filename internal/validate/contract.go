package validate

import (
	"strconv"
	"time"

	"fornecedores/pkg/types"
)

const dateLayout = "2006-01-02"

// Contract validates a contract draft for both creation and update.
// The supplier link is mandatory in both flows: a contract is never
// stored without a resolved supplier id and denormalized name.
func Contract(d types.ContractDraft) map[string]string {
	errs := map[string]string{}

	if blank(d.SupplierID) || blank(d.SupplierName) {
		errs["supplierId"] = "Por favor selecione um fornecedor"
	}

	if blank(d.Reference) {
		errs["reference"] = MsgRequired
	}
	if blank(d.Description) {
		errs["description"] = MsgRequired
	}
	if blank(d.StartDate) {
		errs["startDate"] = MsgRequired
	}
	if blank(d.EndDate) {
		errs["endDate"] = MsgRequired
	}
	if blank(d.Object) {
		errs["object"] = MsgRequired
	}
	if blank(d.Status) {
		errs["status"] = MsgRequired
	}

	amount, err := strconv.ParseFloat(d.Amount, 64)
	if blank(d.Amount) || err != nil || amount <= 0 {
		errs["amount"] = MsgPositiveNumber
	}

	if !blank(d.StartDate) && !blank(d.EndDate) {
		start, errStart := time.Parse(dateLayout, d.StartDate)
		end, errEnd := time.Parse(dateLayout, d.EndDate)
		if errStart == nil && errEnd == nil && end.Before(start) {
			errs["endDate"] = MsgEndBeforeStart
		}
	}

	return errs
}
