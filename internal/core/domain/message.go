package domain

// ProcessDocumentMessage is the queue payload handed from ingestion to the
// processing worker. The JSON field names are the wire contract and must not
// change.
type ProcessDocumentMessage struct {
	DocumentID    string `json:"documentId"`
	StoredName    string `json:"storedName"`
	ContainerName string `json:"containerName"`
}
