package filestorage

import "mime/multipart"

// FileStorage defines the interface for temporary upload storage.
// Uploaded CSV files are saved here for the duration of an import and
// removed afterwards regardless of outcome.
type FileStorage interface {
	// SaveFile saves an uploaded file and returns its storage path.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a file from storage. Deleting a file that does
	// not exist is not an error.
	DeleteFile(filePath string) error
}
