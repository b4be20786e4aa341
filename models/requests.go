package models

// UploadRequest carries one encrypted file to the blob store. It is sent as
// a multipart form: field "file" holds the ciphertext string, "username" and
// "filename" identify the record.
type UploadRequest struct {
	// Ciphertext is the self-describing encrypted file content.
	Ciphertext string

	// Username is the owner of the file record.
	Username string

	// Filename is the name the server stores the record under.
	Filename string
}

// DownloadRequest is the body of POST /filedown. The server responds with
// the raw ciphertext as a text body.
type DownloadRequest struct {
	Username string `json:"username"`
	FileName string `json:"file_name"`
}

// ListRequest is the body of POST /fileget.
type ListRequest struct {
	Username string `json:"username"`
}

// DeleteRequest is the body of POST /filedel. Note the field name differs
// from DownloadRequest: the deletion endpoint expects "filename".
type DeleteRequest struct {
	Username string `json:"username"`
	Filename string `json:"filename"`
}
