package main

import (
	"context"

	"farm_market/config"
	authmodels "farm_market/internal/api/auth/models"
	catalogmodels "farm_market/internal/api/catalog/models"
	deliverymodels "farm_market/internal/api/delivery/models"
	farmermodels "farm_market/internal/api/farmer/models"
	logisticsmodels "farm_market/internal/api/logistics/models"
	marketmodels "farm_market/internal/api/market/models"
	notificationmodels "farm_market/internal/api/notification/models"
	ordermodels "farm_market/internal/api/order/models"
	"farm_market/internal/database"
	"farm_market/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	// Auth
	global.ColNames.Users = "auth_users"
	global.ColNames.Permissions = "auth_permissions"
	global.ColNames.Roles = "auth_roles"
	global.ColNames.RolePermissions = "auth_role_permissions"
	global.ColNames.UserRoles = "auth_user_roles"

	// Catalog
	global.ColNames.Items = "catalog_items"
	global.ColNames.QualityStandards = "catalog_quality_standards"

	// Farmer
	global.ColNames.FarmerOrders = "farmer_orders"

	// Logistics
	global.ColNames.LogisticsCenters = "logistics_centers"
	global.ColNames.ShelfCrowds = "logistics_shelf_crowds"
	global.ColNames.ContainerAssignments = "logistics_container_assignments"
	global.ColNames.AmsSnapshots = "logistics_ams_snapshots"

	// Market
	global.ColNames.Carts = "market_carts"

	// Order
	global.ColNames.Orders = "orders"

	// Delivery
	global.ColNames.DeliveryShifts = "delivery_shifts"
	global.ColNames.DelivererSchedules = "deliverer_schedules"

	// Notification
	global.ColNames.NotificationHistory = "notification_history"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký custom validators:
// no_xss, strong_password, object_id, shift, unit_mode, date_yyyymmdd, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo tag `index` của model
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	ctx := context.TODO()

	createIndexes := func(colName string, model interface{}) {
		if err := database.CreateIndexes(ctx, db.Collection(colName), model); err != nil {
			logrus.Errorf("Failed to create indexes for %s: %v", colName, err)
		}
	}

	// Auth
	createIndexes(global.ColNames.Users, authmodels.User{})
	createIndexes(global.ColNames.Permissions, authmodels.Permission{})
	createIndexes(global.ColNames.Roles, authmodels.Role{})
	createIndexes(global.ColNames.RolePermissions, authmodels.RolePermission{})
	createIndexes(global.ColNames.UserRoles, authmodels.UserRole{})

	// Catalog
	createIndexes(global.ColNames.Items, catalogmodels.Item{})
	createIndexes(global.ColNames.QualityStandards, catalogmodels.QualityStandard{})

	// Farmer
	createIndexes(global.ColNames.FarmerOrders, farmermodels.FarmerOrder{})

	// Logistics
	createIndexes(global.ColNames.LogisticsCenters, logisticsmodels.LogisticsCenter{})
	createIndexes(global.ColNames.ShelfCrowds, logisticsmodels.ShelfCrowd{})
	createIndexes(global.ColNames.ContainerAssignments, logisticsmodels.ContainerAssignment{})
	createIndexes(global.ColNames.AmsSnapshots, logisticsmodels.AmsSnapshot{})

	// Market
	createIndexes(global.ColNames.Carts, marketmodels.Cart{})

	// Order
	createIndexes(global.ColNames.Orders, ordermodels.Order{})

	// Delivery
	createIndexes(global.ColNames.DeliveryShifts, deliverymodels.DeliveryShift{})
	createIndexes(global.ColNames.DelivererSchedules, deliverymodels.DelivererSchedule{})

	// Notification
	createIndexes(global.ColNames.NotificationHistory, notificationmodels.NotificationHistory{})
}
