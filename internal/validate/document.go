package validate

import "fornecedores/pkg/types"

// DocumentCreate validates a new document's metadata. Files selected
// on creation are uploaded as part of the submit; presence is not a
// validation concern until update time.
func DocumentCreate(d types.DocumentDraft) map[string]string {
	errs := map[string]string{}

	if blank(d.Reference) {
		errs["reference"] = MsgRequired
	}
	if blank(d.Title) {
		errs["title"] = MsgRequired
	}
	if blank(d.Description) {
		errs["description"] = MsgRequired
	}
	if blank(d.StartDate) {
		errs["startDate"] = MsgRequired
	}

	return errs
}

// DocumentUpdate adds the at-least-one-file rule: the surviving
// existing files and the newly selected files may not both be empty.
func DocumentUpdate(d types.DocumentDraft) map[string]string {
	errs := DocumentCreate(d)

	if len(d.ExistingFiles) == 0 && d.NewFileCount == 0 {
		errs["files"] = "Por favor mantenha ou adicione pelo menos um ficheiro"
	}

	return errs
}
