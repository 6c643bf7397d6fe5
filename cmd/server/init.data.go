package main

import (
	"farm_market/internal/api/initsvc"
	"farm_market/internal/global"
	"farm_market/internal/logger"
)

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	// 1. Khởi tạo Permissions (tạo các quyền mới nếu chưa có)
	log.Info("🔄 [INIT] Step 1: Initializing permissions...")
	if err := initService.InitPermission(); err != nil {
		log.Fatalf("Failed to initialize permissions: %v", err)
	}
	log.Info("✅ [INIT] Step 1: Permissions initialized/updated successfully")

	// 2. Khởi tạo các Role mặc định (Administrator, Farmer, LogisticsManager,
	// CSManager, Deliverer, Customer) và gán quyền mặc định cho từng role
	log.Info("🔄 [INIT] Step 2: Initializing roles...")
	if err := initService.InitRole(); err != nil {
		log.Fatalf("Failed to initialize roles: %v", err)
	}
	log.Info("✅ [INIT] Step 2: Roles initialized/updated successfully")

	// 3. Đảm bảo đầy đủ Permission cho Administrator
	// Tự động gán tất cả quyền trong hệ thống (bao gồm quyền mới) cho role Administrator
	if err := initService.CheckPermissionForAdministrator(); err != nil {
		log.Warnf("Failed to check permissions for administrator: %v", err)
	} else {
		log.Info("Administrator role permissions synchronized successfully")
	}

	// 4. Tạo user admin tự động từ config (nếu có) - Tùy chọn
	// Nếu không có ADMIN_EMAIL/ADMIN_PASSWORD, user đầu tiên register sẽ tự động trở thành admin
	if global.ServerConfig.AdminEmail != "" {
		if err := initService.InitAdminUser(); err != nil {
			log.Warnf("Failed to initialize admin user from config: %v", err)
			log.Info("User đầu tiên register sẽ tự động trở thành admin")
		} else {
			log.Info("Admin user initialized successfully from config")
		}
	} else {
		log.Info("ADMIN_EMAIL not set")
		log.Info("User đầu tiên register sẽ tự động trở thành admin (First user becomes admin)")
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
