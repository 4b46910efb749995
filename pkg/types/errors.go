package types

import "errors"

var (
	ErrSupplierNotFound  = errors.New("supplier not found")
	ErrContractNotFound  = errors.New("contract not found")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrFolderNotFound    = errors.New("folder not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrUserNotFound      = errors.New("user not found")

	ErrFolderExists = errors.New("folder with that label already exists")
)
