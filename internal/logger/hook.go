package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook là một hook để ghi log bất đồng bộ, tránh blocking request handling.
// Hook này buffer log entries và ghi chúng vào các writers trong một goroutine riêng.
type AsyncHook struct {
	writers    []io.Writer // Danh sách các writers (file, stdout, etc.)
	entries    chan *logrus.Entry
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	bufferSize int
}

// NewAsyncHook tạo một async hook mới với một writer
func NewAsyncHook(writer io.Writer, bufferSize int) *AsyncHook {
	return NewAsyncHookWithWriters([]io.Writer{writer}, bufferSize)
}

// NewAsyncHookWithWriters tạo một async hook mới với nhiều writers
// bufferSize: kích thước buffer cho log entries (mặc định 1000)
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers:    writers,
		entries:    make(chan *logrus.Entry, bufferSize),
		bufferSize: bufferSize,
	}

	// Khởi động goroutine để xử lý log entries
	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire được gọi mỗi khi có log entry mới.
// Hàm này sẽ không block, chỉ đưa entry vào channel.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Nếu hook đã đóng, ghi trực tiếp vào tất cả writers (fallback)
		var data []byte
		var err error

		if entry.Logger.Formatter != nil {
			data, err = entry.Logger.Formatter.Format(entry)
		} else {
			line, strErr := entry.String()
			if strErr != nil {
				return strErr
			}
			data = []byte(line)
		}

		if err != nil {
			return err
		}

		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	// Non-blocking send: nếu channel đầy, bỏ qua log entry này
	select {
	case h.entries <- entry:
	default:
		// Channel đầy, bỏ qua entry để không block request handling
	}

	return nil
}

// processEntries xử lý log entries trong một goroutine riêng.
// ⚠️ QUAN TRỌNG: Hàm này có recover để đảm bảo logger goroutine không crash server
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Không thể dùng logger ở đây vì sẽ tạo vòng lặp
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] Logger goroutine panic recovered: %v\n", r)
					debug.PrintStack()
				}
			}()

			// FilterHook đã đánh dấu entry bị filter bằng field "_filtered"
			if filtered, ok := entry.Data["_filtered"].(bool); ok && filtered {
				return
			}

			// Loại bỏ field "_filtered" khỏi entry trước khi format
			filteredEntry := entry
			if _, ok := entry.Data["_filtered"]; ok {
				filteredEntry = entry.Dup()
				delete(filteredEntry.Data, "_filtered")
			}

			// Format entry thành bytes sử dụng formatter của logger
			var data []byte
			var err error

			if filteredEntry.Logger.Formatter != nil {
				data, err = filteredEntry.Logger.Formatter.Format(filteredEntry)
			} else {
				line, strErr := filteredEntry.String()
				if strErr != nil {
					return
				}
				data = []byte(line)
			}

			if err != nil {
				return
			}

			// Ghi vào tất cả writers (có thể block ở đây, nhưng không ảnh hưởng request handling)
			for _, writer := range h.writers {
				_, err = writer.Write(data)
				if err != nil {
					// Không thể log lỗi ở đây vì sẽ tạo vòng lặp
					continue
				}
			}
		}()
	}
}

// Close đóng hook và đợi tất cả entries được xử lý xong
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
