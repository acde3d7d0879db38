package migration

import (
	"os"

	"daddeck/internal/migration/interfaces"
	"daddeck/internal/providers"
	"daddeck/internal/services"
)

// FileManager persists the collection as a zstd-compressed, version-
// enveloped snapshot. Writes go through a tmp file + rename so a crash
// mid-save never corrupts the previous snapshot.
type FileManager struct {
	service    services.CollectionServiceInterface
	codec      *Codec
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, codec *Codec, service services.CollectionServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		codec:      codec,
		service:    service,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	snapshot := f.service.Snapshot()

	jsonData, err := f.codec.Encode(snapshot)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

// LoadFromFile restores the collection snapshot. A missing file means a
// fresh install and is not an error. Decoding runs in recovery mode: an
// unreadable or pre-current-version snapshot still yields a usable,
// fully migrated collection.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		f.logger.Warnf(providers.TypeApp, "Snapshot not decompressible, starting from an empty collection: %s", err)
		decompressedData = nil
	}

	collection := f.codec.Decode(decompressedData)
	f.service.Replace(collection)
	return nil
}
