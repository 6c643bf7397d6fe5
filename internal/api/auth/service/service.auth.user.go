// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	authdto "farm_market/internal/api/auth/dto"
	models "farm_market/internal/api/auth/models"
	basesvc "farm_market/internal/api/base/service"
	"farm_market/internal/common"
	"farm_market/internal/global"
	"farm_market/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
	userRoleService *basesvc.BaseServiceMongoImpl[models.UserRole]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	userRoleCollection, exist := global.RegistryCollections.Get(global.ColNames.UserRoles)
	if !exist {
		return nil, fmt.Errorf("failed to get user_roles collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
		userRoleService:      basesvc.NewBaseServiceMongo[models.UserRole](userRoleCollection),
	}, nil
}

// Register đăng ký tài khoản mới bằng email + mật khẩu.
// Email phải chưa tồn tại; mật khẩu được băm bcrypt trước khi lưu.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	emailFilter := bson.M{"email": input.Email}
	_, err := s.BaseServiceMongoImpl.FindOne(ctx, emailFilter, nil)
	if err == nil {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Email đã được sử dụng", common.StatusConflict, nil)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể xử lý mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Phone:    input.Phone,
		Tokens:   []models.Token{},
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeAuthCredentials, "Email đã được sử dụng", common.StatusConflict, nil)
		}
		return nil, err
	}

	logged, err := s.issueToken(ctx, &created, input.Hwid)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": logged.ID.Hex(), "email": logged.Email}).Info("Register: Đăng ký thành công")
	return logged, nil
}

// Login đăng nhập bằng email + mật khẩu, cấp JWT token theo hwid.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	filter := bson.M{"email": input.Email}
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utility.ComparePassword(user.Password, input.Password) {
		logrus.WithFields(logrus.Fields{"email": input.Email}).Warn("Login: Sai mật khẩu")
		return nil, common.ErrInvalidCredentials
	}
	if user.IsBlock {
		return nil, common.ErrUserBlocked
	}

	logged, err := s.issueToken(ctx, &user, input.Hwid)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": logged.ID.Hex(), "email": logged.Email}).Info("Login: Đăng nhập thành công")
	return logged, nil
}

// issueToken tạo JWT token mới cho user và lưu vào danh sách tokens theo hwid.
func (s *UserService) issueToken(ctx context.Context, user *models.User, hwid string) (*models.User, error) {
	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.ServerConfig.JwtSecret, user.ID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, err
	}

	user.Token = tokenMap["token"]
	var idTokenExist int = -1
	for i, _token := range user.Tokens {
		if _token.Hwid == hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: hwid, JwtToken: tokenMap["token"]})
	} else {
		user.Tokens[idTokenExist].JwtToken = tokenMap["token"]
	}

	tokenUpdateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  user.Token,
			"tokens": user.Tokens,
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, tokenUpdateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("issueToken: Lỗi khi cập nhật token vào user")
		return nil, err
	}
	return &updatedUser, nil
}

// Logout đăng xuất người dùng (xóa token theo hwid)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	newTokens := make([]models.Token, 0)
	for _, t := range user.Tokens {
		if t.Hwid != input.Hwid {
			newTokens = append(newTokens, t)
		}
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": newTokens,
			"token":  "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// ChangePassword đổi mật khẩu: xác nhận mật khẩu cũ rồi ghi hash mới.
// Mọi token hiện có bị thu hồi, người dùng phải đăng nhập lại.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangePasswordInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	if !utility.ComparePassword(user.Password, input.OldPassword) {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không chính xác", common.StatusUnauthorized, nil)
	}
	hashed, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể xử lý mật khẩu", common.StatusInternalServerError, err)
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": hashed,
			"token":    "",
			"tokens":   []models.Token{},
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}
