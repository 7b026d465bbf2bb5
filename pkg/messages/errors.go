package messages

import "errors"

var (
	ErrParsingCancelled  = errors.New("messages: parsing cancelled")
	ErrFailedToParseYAML = errors.New("messages: failed to parse YAML content")
	ErrFailedToParseJSON = errors.New("messages: failed to parse JSON content")
	ErrInvalidStructure  = errors.New("messages: invalid message file structure")

	ErrUnsupportedFile = errors.New("messages: unsupported file extension")
	ErrFailedToRead    = errors.New("messages: failed to read message file")

	ErrEmptyLanguage     = errors.New("messages: empty language code")
	ErrInvalidLanguage   = errors.New("messages: invalid language code")
	ErrNoDefaultMessages = errors.New("messages: no messages for default language")
)
