package global

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	defaultMaxLogSize = 2_500_000
	defaultMaxLogs    = 2
)

// rollingFileWriter appends to <name>.log until it reaches MaxSize, then shifts it to <name>-1.log.
// Older logs move up one index and anything at MaxLogs or past it is deleted.
type rollingFileWriter struct {
	FileDirectory string
	FileName      string

	// size in bytes a log can reach before it gets rolled over
	MaxSize int64
	// number of log files kept, including the current one
	MaxLogs int
}

func NewRollingFileWriter(fileDir string, fileName string) rollingFileWriter {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		panic(err)
	}

	return rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
		MaxSize:       defaultMaxLogSize,
		MaxLogs:       defaultMaxLogs,
	}
}

func (w rollingFileWriter) currentLog() string {
	return filepath.Join(w.FileDirectory, w.FileName+".log")
}

func (w rollingFileWriter) indexedLog(index int64) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", w.FileName, index))
}

func (w rollingFileWriter) Write(b []byte) (int, error) {
	if stats, err := os.Stat(w.currentLog()); err == nil && stats.Size() >= w.MaxSize {
		if err := w.roll(); err != nil {
			return 0, err
		}
	}

	file, err := os.OpenFile(w.currentLog(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return file.Write(b)
}

// roll moves every log up one index, oldest first so no rename lands on a file that hasn't moved yet
func (w rollingFileWriter) roll() error {
	archived, err := filepath.Glob(filepath.Join(w.FileDirectory, w.FileName+"-*.log"))
	if err != nil {
		return err
	}

	archived = lo.Filter(archived, func(path string, _ int) bool {
		return getLogIndex(w.FileName, path) >= 0
	})
	slices.SortFunc(archived, func(a, b string) int {
		return cmp.Compare(getLogIndex(w.FileName, b), getLogIndex(w.FileName, a))
	})

	for _, path := range archived {
		next := getLogIndex(w.FileName, path) + 1
		if next >= int64(w.MaxLogs) {
			if err := os.Remove(path); err != nil {
				return err
			}
			continue
		}

		if err := os.Rename(path, w.indexedLog(next)); err != nil {
			return err
		}
	}

	if w.MaxLogs <= 1 {
		return os.Remove(w.currentLog())
	}

	return os.Rename(w.currentLog(), w.indexedLog(1))
}

// getLogIndex is the N in <base>-N.log, or -1 when the name doesn't parse
func getLogIndex(baseFileName string, filePath string) int64 {
	fileName, _ := strings.CutSuffix(filepath.Base(filePath), ".log")
	indexStr, _ := strings.CutPrefix(fileName, baseFileName+"-")

	index, err := strconv.ParseInt(indexStr, 10, 32)
	if err != nil {
		return -1
	}

	return index
}
