package system

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/zorba-modules/process/runtime/util"
)

// drainChunkSize is the read size for each pipe. Reads block until data is
// available, so the chunk size only bounds how much is moved per syscall.
const drainChunkSize = 64 * 1024

// drain reads both pipes to end-of-stream concurrently. End-of-stream is
// EOF or a broken pipe, both are the expected termination of a drain, not a
// fault. Any other read error discards both captures, closes the read ends
// and surfaces the error.
func drain(child *Child, stripCarriageReturns bool) (stdout, stderr []byte, err error) {
	var stdoutBuf, stderrBuf bytes.Buffer
	var stdoutErr, stderrErr error

	// The child may write heavily to one stream while the other pipe is
	// full, each stream gets its own drain so neither blocks the other.
	util.Parallel(
		func() { stdoutErr = drainPipe(&stdoutBuf, child.stdoutRead, stripCarriageReturns) },
		func() { stderrErr = drainPipe(&stderrBuf, child.stderrRead, stripCarriageReturns) },
	)

	if stdoutErr != nil {
		child.release()
		return nil, nil, errors.Wrap(stdoutErr, "failed to read stdout pipe")
	}
	if stderrErr != nil {
		child.release()
		return nil, nil, errors.Wrap(stderrErr, "failed to read stderr pipe")
	}
	return stdoutBuf.Bytes(), stderrBuf.Bytes(), nil
}

func drainPipe(buf *bytes.Buffer, pipe *os.File, stripCarriageReturns bool) error {
	chunk := make([]byte, drainChunkSize)
	for {
		n, err := pipe.Read(chunk)
		if n > 0 {
			data := chunk[:n]
			if stripCarriageReturns {
				data = dropCarriageReturns(data)
			}
			buf.Write(data)
		}
		if err == io.EOF || isBrokenPipe(err) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// isBrokenPipe reports whether err means the other end of the pipe is gone,
// which some platforms report instead of EOF.
func isBrokenPipe(err error) bool {
	return err != nil && errors.Is(err, errBrokenPipe)
}

// dropCarriageReturns removes '\r' bytes from data, in place.
func dropCarriageReturns(data []byte) []byte {
	if bytes.IndexByte(data, '\r') < 0 {
		return data
	}
	out := data[:0]
	for _, b := range data {
		if b != '\r' {
			out = append(out, b)
		}
	}
	return out
}
