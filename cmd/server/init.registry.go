package main

import (
	"farm_market/config"
	"farm_market/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {

	logrus.Info("Initialized registry") // Ghi log thông báo đã khởi tạo registry

	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName, db); err != nil {
		logrus.Errorf("Failed to register database %s: %v", cfg.MongoDB_DBName, err)
		return err
	}

	colNames := []string{
		global.ColNames.Users, global.ColNames.Permissions, global.ColNames.Roles, global.ColNames.RolePermissions, global.ColNames.UserRoles,
		global.ColNames.Items, global.ColNames.QualityStandards,
		global.ColNames.FarmerOrders,
		global.ColNames.LogisticsCenters, global.ColNames.ShelfCrowds, global.ColNames.ContainerAssignments, global.ColNames.AmsSnapshots,
		global.ColNames.Carts,
		global.ColNames.Orders,
		global.ColNames.DeliveryShifts, global.ColNames.DelivererSchedules,
		global.ColNames.NotificationHistory,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}

	}

	return nil
}
