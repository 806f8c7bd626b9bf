package domain

import "errors"

// ErrDocumentNotFound is an error returned when the referenced document does not exist
var ErrDocumentNotFound = errors.New("document not found")

// ErrInvalidContentType is an error returned when the declared content type is not allowed
var ErrInvalidContentType = errors.New("content type not allowed")

// ErrFileSizeTooBig is an error returned when the upload exceeds the size limit
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrEmptyFile is an error returned when no content was provided
var ErrEmptyFile = errors.New("empty file")
