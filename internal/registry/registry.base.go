// Package registry cung cấp implementation của registry pattern với generic type.
// Package này cho phép quản lý các singleton instances trong ứng dụng một cách thread-safe.
// Sử dụng generic type để có thể tái sử dụng cho nhiều loại đối tượng khác nhau.
package registry

import (
	"fmt"
	"sync"

	"farm_market/internal/common"
)

// Registry là một thread-safe generic registry pattern implementation.
// Type parameter T cho phép registry quản lý bất kỳ loại object nào.
// Thread-safety được đảm bảo thông qua sync.RWMutex.
//
// Example:
//
//	// Tạo registry cho các collection
//	colRegistry := NewRegistry[*mongo.Collection]()
//
//	// Đăng ký một item
//	colRegistry.Register("items", col)
//
//	// Lấy item
//	if col, exists := colRegistry.Get("items"); exists {
//	    ...
//	}
type Registry[T any] struct {
	items map[string]T // Map lưu trữ các items theo key
	mu    sync.RWMutex // Mutex để đảm bảo thread-safety
}

// NewRegistry tạo và trả về một registry mới.
// Generic type T xác định loại items mà registry sẽ quản lý.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một item mới vào registry.
// Nếu item với name đã tồn tại, nó sẽ bị ghi đè.
//
// Returns:
//   - isNew: true nếu là item mới, false nếu ghi đè item cũ
//   - err: Trả về lỗi nếu name rỗng
//
// Thread-safety: Safe for concurrent use
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get lấy item theo tên.
// Trả về item và một boolean cho biết item có tồn tại hay không.
//
// Thread-safety: Safe for concurrent use
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// GetOrCreate lấy item theo tên, nếu không tồn tại sẽ tạo mới thông qua creator function
//
// Thread-safety: Safe for concurrent use
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existingItem, exists := r.items[name]; exists {
		return existingItem, nil
	}

	newItem, err := creator()
	if err != nil {
		return item, fmt.Errorf("failed to create item: %w", err)
	}

	r.items[name] = newItem
	return newItem, nil
}

// Update cập nhật item một cách thread-safe
//
// Thread-safety: Safe for concurrent use
func (r *Registry[T]) Update(name string, updater func(T) (T, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[name]
	if !exists {
		return fmt.Errorf("item not found: %s: %w", name, common.ErrNotFound)
	}

	updated, err := updater(current)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	r.items[name] = updated
	return nil
}

// Keys trả về danh sách tên tất cả items đã đăng ký.
//
// Thread-safety: Safe for concurrent use
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.items))
	for name := range r.items {
		keys = append(keys, name)
	}
	return keys
}

// Clear xóa một item khỏi registry.
// Nếu cleanup function được cung cấp, nó sẽ được gọi trước khi xóa để giải phóng tài nguyên.
//
// Thread-safety: Safe for concurrent use
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		return false, nil
	}

	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("failed to cleanup item %s: %w", name, err)
		}
	}

	delete(r.items, name)
	return true, nil
}

// ClearAll xóa tất cả items trong registry.
// Nếu cleanup function được cung cấp, nó sẽ được gọi cho mỗi item trước khi xóa.
//
// Thread-safety: Safe for concurrent use
func (r *Registry[T]) ClearAll(cleanup func(T) error) (count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count = len(r.items)
	if count == 0 {
		return 0, nil
	}

	if cleanup != nil {
		var errs []error
		for name, item := range r.items {
			if err := cleanup(item); err != nil {
				errs = append(errs, fmt.Errorf("failed to cleanup %s: %w", name, err))
			}
		}
		if len(errs) > 0 {
			return 0, fmt.Errorf("cleanup errors occurred: %v", errs)
		}
	}

	r.items = make(map[string]T)
	return count, nil
}
