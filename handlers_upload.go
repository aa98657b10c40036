package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"github.com/undanganku/undanganku/utils"
)

var allowedAudioExts = map[string]bool{
	".mp3": true,
	".wav": true,
	".ogg": true,
	".m4a": true,
}

// musicDir resolves the directory uploaded music is stored in,
// creating it if needed
func musicDir(app core.App) (string, error) {
	dir := filepath.Join(app.DataDir(), "uploads", "music")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// handleUploadMusic accepts a multipart audio file and stores it under
// a random name so uploads never collide
func handleUploadMusic(app core.App) func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		file, header, err := re.Request.FormFile("file")
		if err != nil {
			return utils.BadRequestResponse(re, "Missing file")
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedAudioExts[ext] {
			return utils.BadRequestResponse(re, "Only audio files are allowed")
		}
		if header.Size > utils.MaxMusicFileSize {
			return utils.BadRequestResponse(re, "File too large")
		}

		dir, err := musicDir(app)
		if err != nil {
			log.Printf("[Upload] Music dir unavailable: %v", err)
			return utils.InternalErrorResponse(re, "Upload storage unavailable")
		}

		storedName := RandomFilename(ext)
		dst, err := os.Create(filepath.Join(dir, storedName))
		if err != nil {
			log.Printf("[Upload] Create failed: %v", err)
			return utils.InternalErrorResponse(re, "Could not store file")
		}
		defer dst.Close()

		if _, err := io.Copy(dst, file); err != nil {
			log.Printf("[Upload] Write failed: %v", err)
			return utils.InternalErrorResponse(re, "Could not store file")
		}

		utils.AuditSuccess(app, re, utils.AuditActionMusicUpload, storedName, map[string]any{
			"original": header.Filename,
			"size":     header.Size,
		})
		log.Printf("[Upload] Stored music %s (%d bytes) for %s", storedName, header.Size, re.Auth.Id)

		return utils.DataResponse(re, map[string]string{
			"filename": header.Filename,
			"url":      "/uploads/music/" + storedName,
			"message":  "Music uploaded successfully",
		})
	}
}
