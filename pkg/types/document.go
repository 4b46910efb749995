package types

import "time"

// Document is a general filed record, optionally linked to a supplier
// and/or a folder. Both links are denormalized id+name pairs.
type Document struct {
	ID           string     `db:"id"`
	Reference    string     `db:"reference"`
	Title        string     `db:"title"`
	Description  string     `db:"description"`
	StartDate    string     `db:"start_date"`
	SupplierID   *string    `db:"supplier_id"`
	SupplierName *string    `db:"supplier_name"`
	FolderID     *string    `db:"folder_id"`
	FolderName   *string    `db:"folder_name"`
	Office       *string    `db:"office"`
	FileUrls     []FileRef  `db:"file_urls"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
	UpdatedBy    *string    `db:"updated_by"`
}

// DocumentDraft carries the document form values. ExistingFiles holds
// the URLs the user chose to keep during an update; file presence is
// only required on update.
type DocumentDraft struct {
	Reference     string   `form:"reference"`
	Title         string   `form:"title"`
	Description   string   `form:"description"`
	StartDate     string   `form:"startDate"`
	SupplierID    string   `form:"supplierId"`
	SupplierName  string   `form:"supplierName"`
	FolderID      string   `form:"folderId"`
	FolderName    string   `form:"folderName"`
	Office        string   `form:"office"`
	ExistingFiles []string `form:"existingFiles"`
	NewFileCount  int      `form:"-"`
}

// Folder is a named grouping used to filter documents.
type Folder struct {
	ID        string    `db:"id"`
	Label     string    `db:"label"`
	CreatedAt time.Time `db:"created_at"`
}
