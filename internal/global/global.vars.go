package global

import (
	"farm_market/config"
	"farm_market/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionNames chứa tên các collection trong MongoDB
type CollectionNames struct {
	// Auth
	Users           string // Tên collection cho người dùng
	Permissions     string // Tên collection cho quyền
	Roles           string // Tên collection cho vai trò
	RolePermissions string // Tên collection cho vai trò và quyền
	UserRoles       string // Tên collection cho người dùng và vai trò

	// Catalog
	Items            string // Tên collection cho mặt hàng
	QualityStandards string // Tên collection cho tiêu chuẩn chất lượng

	// Farmer
	FarmerOrders string // Tên collection cho đơn giao nông sản của nông dân

	// Logistics
	LogisticsCenters     string // Tên collection cho trung tâm logistics
	ShelfCrowds          string // Tên collection cho snapshot độ đầy kệ hàng
	ContainerAssignments string // Tên collection cho phân bổ container
	AmsSnapshots         string // Tên collection cho snapshot tồn kho bán (AMS)

	// Market
	Carts string // Tên collection cho giỏ hàng

	// Order
	Orders string // Tên collection cho đơn hàng khách

	// Delivery
	DeliveryShifts     string // Tên collection cho ca giao hàng
	DelivererSchedules string // Tên collection cho lịch khả dụng của người giao hàng

	// Notification
	NotificationHistory string // Tên collection cho lịch sử thông báo
}

// Các biến toàn cục
var Validate *validator.Validate      // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client     // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration // Cấu hình của server
var ColNames CollectionNames = *new(CollectionNames) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
