package basesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"farm_market/internal/common"
	"farm_market/internal/global"
)

// RelationshipCheck định nghĩa một quan hệ cần kiểm tra
type RelationshipCheck struct {
	CollectionName string // Collection chứa record tham chiếu
	FieldName      string // Field trỏ tới record sắp xóa
	ErrorMessage   string // Thông báo lỗi (có %d cho số lượng)
	Optional       bool   // Bỏ qua nếu collection chưa đăng ký trong registry
}

// CheckRelationshipExists kiểm tra có record nào trong collection khác đang trỏ tới record này không
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Không tìm thấy collection '%s' để kiểm tra quan hệ", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		filter := bson.M{check.FieldName: recordID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Không thể xóa record vì có %d record trong collection '%s' đang tham chiếu tới record này", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// CheckRelationshipExistsWithFilter kiểm tra quan hệ với filter tùy chỉnh
func CheckRelationshipExistsWithFilter(ctx context.Context, filter bson.M, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Không tìm thấy collection '%s' để kiểm tra quan hệ", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Không thể xóa record vì có %d record trong collection '%s' đang tham chiếu tới record này", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// GetRelationshipCount trả về số lượng record đang tham chiếu tới record này
func GetRelationshipCount(ctx context.Context, recordID primitive.ObjectID, collectionName, fieldName string) (int64, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return 0, common.NewError(common.ErrCodeInternalServer, fmt.Sprintf("Không tìm thấy collection '%s'", collectionName), common.StatusInternalServerError, nil)
	}
	filter := bson.M{fieldName: recordID}
	return collection.CountDocuments(ctx, filter)
}

// ValidateBeforeDeleteRole kiểm tra các quan hệ của Role trước khi xóa
func ValidateBeforeDeleteRole(ctx context.Context, roleID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.ColNames.UserRoles, FieldName: "roleId", ErrorMessage: "Không thể xóa role vì có %d user đang sử dụng role này. Vui lòng gỡ role khỏi các user trước."},
		{CollectionName: global.ColNames.RolePermissions, FieldName: "roleId", ErrorMessage: "Không thể xóa role vì có %d permission đang được gán cho role này. Vui lòng gỡ các permission trước."},
	}
	return CheckRelationshipExists(ctx, roleID, checks)
}

// ValidateBeforeDeletePermission kiểm tra các quan hệ của Permission trước khi xóa
func ValidateBeforeDeletePermission(ctx context.Context, permissionID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.ColNames.RolePermissions, FieldName: "permissionId", ErrorMessage: "Không thể xóa permission vì có %d role đang sử dụng permission này. Vui lòng gỡ permission khỏi các role trước."},
	}
	return CheckRelationshipExists(ctx, permissionID, checks)
}

// ValidateBeforeDeleteUser kiểm tra các quan hệ của User trước khi xóa
func ValidateBeforeDeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.ColNames.UserRoles, FieldName: "userId", ErrorMessage: "Không thể xóa user vì có %d role đang được gán cho user này. Vui lòng gỡ các role trước."},
		{CollectionName: global.ColNames.FarmerOrders, FieldName: "farmerId", ErrorMessage: "Không thể xóa user vì có %d đơn giao nông sản thuộc về user này."},
		{CollectionName: global.ColNames.Orders, FieldName: "customerId", ErrorMessage: "Không thể xóa user vì có %d đơn hàng thuộc về user này."},
	}
	return CheckRelationshipExists(ctx, userID, checks)
}

// ValidateBeforeDeleteItem kiểm tra các quan hệ của Item trước khi xóa
func ValidateBeforeDeleteItem(ctx context.Context, itemID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.ColNames.FarmerOrders, FieldName: "itemId", ErrorMessage: "Không thể xóa mặt hàng vì có %d đơn giao nông sản đang tham chiếu tới mặt hàng này."},
		{CollectionName: global.ColNames.Orders, FieldName: "lines.itemId", ErrorMessage: "Không thể xóa mặt hàng vì có %d đơn hàng đang tham chiếu tới mặt hàng này."},
	}
	return CheckRelationshipExists(ctx, itemID, checks)
}

// ValidateBeforeDeleteLogisticsCenter kiểm tra các quan hệ của LogisticsCenter trước khi xóa
func ValidateBeforeDeleteLogisticsCenter(ctx context.Context, centerID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.ColNames.FarmerOrders, FieldName: "centerId", ErrorMessage: "Không thể xóa trung tâm vì có %d đơn giao nông sản gắn với trung tâm này."},
		{CollectionName: global.ColNames.Orders, FieldName: "centerId", ErrorMessage: "Không thể xóa trung tâm vì có %d đơn hàng gắn với trung tâm này."},
		{CollectionName: global.ColNames.ContainerAssignments, FieldName: "centerId", ErrorMessage: "Không thể xóa trung tâm vì có %d phân bổ container gắn với trung tâm này."},
	}
	return CheckRelationshipExists(ctx, centerID, checks)
}
