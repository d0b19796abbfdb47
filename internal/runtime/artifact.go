package runtime

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Artifact header layout (little endian):
//
//	magic   [4]byte  "MTQ1"
//	version uint32
//	flags   uint32
//	vocab   uint32
//	dmodel  uint32
//	idlen   uint32, followed by idlen bytes of model id
//
// The quantized weight payload follows and is consumed only by the native
// backend.
const (
	artifactMagic   = "MTQ1"
	artifactVersion = 1

	maxModelIDLen = 256
)

// ArtifactInfo is the validated header of a quantized model artifact.
type ArtifactInfo struct {
	Version   uint32
	Flags     uint32
	VocabSize uint32
	DModel    uint32
	ModelID   string
	// PayloadOffset is the byte offset where the weight payload begins.
	PayloadOffset int64
}

// corruptArtifactError signals an unreadable or malformed model artifact.
type corruptArtifactError struct {
	path string
	msg  string
}

func (e corruptArtifactError) Error() string {
	return fmt.Sprintf("corrupt artifact %s: %s", e.path, e.msg)
}

// IsCorruptArtifact reports whether err indicates a malformed artifact file.
func IsCorruptArtifact(err error) bool {
	_, ok := err.(corruptArtifactError)
	return ok
}

// ReadArtifactHeader opens path and validates the artifact header. It never
// reads the weight payload.
func ReadArtifactHeader(path string) (ArtifactInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ArtifactInfo{}, fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()
	return readArtifactHeader(f, path)
}

func readArtifactHeader(r io.Reader, path string) (ArtifactInfo, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return ArtifactInfo{}, corruptArtifactError{path: path, msg: "short header"}
	}
	if string(magic[:]) != artifactMagic {
		return ArtifactInfo{}, corruptArtifactError{path: path, msg: fmt.Sprintf("bad magic %q", magic)}
	}
	var fixed struct {
		Version uint32
		Flags   uint32
		Vocab   uint32
		DModel  uint32
		IDLen   uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &fixed); err != nil {
		return ArtifactInfo{}, corruptArtifactError{path: path, msg: "short header"}
	}
	if fixed.Version != artifactVersion {
		return ArtifactInfo{}, corruptArtifactError{path: path, msg: fmt.Sprintf("unsupported version %d", fixed.Version)}
	}
	if fixed.Vocab == 0 {
		return ArtifactInfo{}, corruptArtifactError{path: path, msg: "zero vocab size"}
	}
	if fixed.IDLen == 0 || fixed.IDLen > maxModelIDLen {
		return ArtifactInfo{}, corruptArtifactError{path: path, msg: fmt.Sprintf("model id length %d out of range", fixed.IDLen)}
	}
	id := make([]byte, fixed.IDLen)
	if _, err := io.ReadFull(r, id); err != nil {
		return ArtifactInfo{}, corruptArtifactError{path: path, msg: "truncated model id"}
	}
	return ArtifactInfo{
		Version:       fixed.Version,
		Flags:         fixed.Flags,
		VocabSize:     fixed.Vocab,
		DModel:        fixed.DModel,
		ModelID:       string(id),
		PayloadOffset: int64(4 + 5*4 + len(id)),
	}, nil
}

// WriteArtifactHeader writes a valid header for info to w. It exists for the
// export pipeline's Go-side tooling and for test fixtures.
func WriteArtifactHeader(w io.Writer, info ArtifactInfo) error {
	if len(info.ModelID) == 0 || len(info.ModelID) > maxModelIDLen {
		return fmt.Errorf("model id length %d out of range", len(info.ModelID))
	}
	if _, err := w.Write([]byte(artifactMagic)); err != nil {
		return err
	}
	fixed := []uint32{artifactVersion, info.Flags, info.VocabSize, info.DModel, uint32(len(info.ModelID))}
	for _, v := range fixed {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(info.ModelID))
	return err
}
