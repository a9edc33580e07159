package deepgram

import (
	"fmt"
	"path/filepath"
	"strings"
)

var validMimeTypes = map[string]bool{
	"audio/webm":  true,
	"audio/wav":   true,
	"audio/mp3":   true,
	"audio/mpeg":  true,
	"audio/mp4":   true,
	"audio/x-m4a": true,
	"audio/flac":  true,
	"audio/ogg":   true,
}

var validExtensions = map[string]bool{
	".webm": true,
	".wav":  true,
	".mp3":  true,
	".m4a":  true,
	".mp4":  true,
	".flac": true,
	".ogg":  true,
}

// ValidateAudio checks an uploaded audio attachment before any transcription
// work begins. Either a known MIME type or a known extension is enough.
func ValidateAudio(filename, mimeType string, size int64) error {
	if size <= 0 {
		return fmt.Errorf("no audio file provided")
	}
	if size > MaxAudioBytes {
		return fmt.Errorf("audio file too large (max 25MB)")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !validMimeTypes[mimeType] && !validExtensions[ext] {
		return fmt.Errorf("invalid audio format. Supported formats: WEBM, WAV, MP3, M4A, FLAC, OGG")
	}

	return nil
}
