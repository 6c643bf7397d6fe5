package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusAccepted  = 202 // Yêu cầu được chấp nhận
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest         = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized       = 401 // Chưa xác thực
	StatusForbidden          = 403 // Không có quyền truy cập
	StatusNotFound           = 404 // Không tìm thấy tài nguyên
	StatusMethodNotAllowed   = 405 // Phương thức HTTP không được hỗ trợ
	StatusConflict           = 409 // Xung đột dữ liệu
	StatusGone               = 410 // Tài nguyên không còn tồn tại
	StatusPreconditionFailed = 412 // Điều kiện tiên quyết không thỏa mãn
	StatusTooManyRequests    = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusNotImplemented      = 501 // Chức năng chưa được triển khai
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
)

// Response Messages
const (
	// Success Messages
	MsgSuccess  = "Thao tác thành công"
	MsgCreated  = "Tạo mới thành công"
	MsgAccepted = "Yêu cầu được chấp nhận"

	// Error Messages
	MsgBadRequest       = "Yêu cầu không hợp lệ"
	MsgUnauthorized     = "Vui lòng đăng nhập"
	MsgForbidden        = "Không có quyền truy cập"
	MsgNotFound         = "Không tìm thấy tài nguyên"
	MsgConflict         = "Xung đột dữ liệu"
	MsgTooManyRequests  = "Quá nhiều yêu cầu"
	MsgInternalError    = "Lỗi hệ thống"
	MsgNotImplemented   = "Chức năng chưa được triển khai"

	// Token Messages
	MsgTokenMissing = "Thiếu token xác thực"
	MsgTokenInvalid = "Token không hợp lệ"
	MsgTokenExpired = "Token đã hết hạn"

	// Validation Messages
	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgDatabaseError   = "Lỗi tương tác với cơ sở dữ liệu"
	MsgInvalidFormat   = "Định dạng dữ liệu không hợp lệ"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: AUTH_001)
	Category    string // Phân loại lỗi (ví dụ: Authentication)
	SubCategory string // Phân loại con (ví dụ: Token)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "Lỗi xác thực chung",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Lỗi liên quan đến token",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Lỗi thông tin đăng nhập",
	}

	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Role",
		Description: "Lỗi liên quan đến vai trò người dùng",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Lỗi xác thực dữ liệu chung",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Lỗi cơ sở dữ liệu chung",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Lỗi kết nối cơ sở dữ liệu",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Lỗi truy vấn dữ liệu",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "Lỗi logic nghiệp vụ chung",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Lỗi trạng thái nghiệp vụ",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Lỗi thao tác nghiệp vụ",
	}

	ErrCodeBusinessStock = ErrorCode{
		Code:        "BIZ_003",
		Category:    "Business",
		SubCategory: "Stock",
		Description: "Lỗi tồn kho bán hàng",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}

	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Authentication Errors
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Thông tin đăng nhập không chính xác", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, "Phiên đăng nhập đã hết hạn", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, "Token không hợp lệ", StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, "Thiếu token xác thực", StatusUnauthorized, nil)
	ErrUserBlocked        = NewError(ErrCodeAuthCredentials, "Tài khoản đã bị khóa", StatusForbidden, nil)
	ErrUserNotFound       = NewError(ErrCodeAuthCredentials, "Không tìm thấy thông tin người dùng", StatusNotFound, nil)

	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
	ErrInvalidEmail  = NewError(ErrCodeValidationInput, "Email không đúng định dạng", StatusBadRequest, nil)
	ErrWeakPassword  = NewError(ErrCodeValidationInput, "Mật khẩu quá yếu", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Định dạng dữ liệu không hợp lệ", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu thông tin bắt buộc", StatusBadRequest, nil)

	// Database Errors
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "Dữ liệu đã tồn tại", StatusConflict, nil)
	ErrConstraint = NewError(ErrCodeDatabaseQuery, "Vi phạm ràng buộc dữ liệu", StatusBadRequest, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "Lỗi kết nối cơ sở dữ liệu", StatusServiceUnavailable, nil)

	// Business Logic Errors
	ErrInvalidState     = NewError(ErrCodeBusinessState, "Trạng thái không hợp lệ", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Thao tác không hợp lệ", StatusBadRequest, nil)

	// Nghiệp vụ nông sản: chuyển trạng thái đơn không hợp lệ, hết tồn kho bán,
	// giỏ hàng bị vô hiệu do đổi bối cảnh giao nhận.
	ErrInvalidTransition  = NewError(ErrCodeBusinessState, "Chuyển trạng thái đơn hàng không hợp lệ", StatusBadRequest, nil)
	ErrInsufficientStock  = NewError(ErrCodeBusinessStock, "Số lượng vượt quá tồn kho khả dụng", StatusConflict, nil)
	ErrStockNotAvailable  = NewError(ErrCodeBusinessStock, "Mặt hàng không còn trong kho bán khả dụng", StatusConflict, nil)
	ErrCartContextChanged = NewError(ErrCodeBusinessState, "Bối cảnh giao nhận đã thay đổi, giỏ hàng bị xóa", StatusConflict, nil)
	ErrDuplicateOrderLine = NewError(ErrCodeBusinessOperation, "Đơn hàng chứa dòng trùng lặp", StatusBadRequest, nil)
	ErrShiftInvalid       = NewError(ErrCodeValidationInput, "Ca làm việc không hợp lệ", StatusBadRequest, nil)
)

// MongoDB Specific Errors
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, "Lỗi kết nối MongoDB", StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, "Lỗi mạng khi kết nối MongoDB", StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, "Kết nối MongoDB bị timeout", StatusServiceUnavailable, nil)
	ErrMongoAuth       = NewError(ErrCodeAuth, "Lỗi xác thực MongoDB", StatusUnauthorized, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, "Lỗi truy vấn MongoDB", StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, "Lỗi ghi dữ liệu MongoDB", StatusInternalServerError, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, "Dữ liệu trùng lặp trong MongoDB", StatusConflict, nil)
	ErrMongoSystem     = NewError(ErrCodeDatabase, "Lỗi hệ thống MongoDB", StatusInternalServerError, nil)
)

// ConvertMongoError chuyển đổi lỗi MongoDB sang lỗi hệ thống
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Không convert ErrNotFound - các service dựa vào sentinel này
	if errors.Is(err, ErrNotFound) {
		return err
	}

	// Kiểm tra các loại lỗi MongoDB cụ thể theo dải mã lệnh
	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrMongoConnection
		case mongoErr.Code >= 200 && mongoErr.Code < 300:
			return ErrMongoAuth
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return ErrMongoQuery
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return ErrMongoWrite
		case mongoErr.Code >= 500:
			return ErrMongoSystem
		}
	}

	// Kiểm tra các lỗi MongoDB khác
	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	// Nếu không tìm thấy lỗi cụ thể, trả về lỗi hệ thống chung
	return NewError(ErrCodeDatabase, "Lỗi kết nối cơ sở dữ liệu", StatusInternalServerError, err)
}
