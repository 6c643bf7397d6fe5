package catalogsvc

import (
	"context"
	"fmt"

	models "farm_market/internal/api/catalog/models"
	basesvc "farm_market/internal/api/base/service"
	"farm_market/internal/common"
	"farm_market/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QualityStandardService là cấu trúc chứa các phương thức liên quan đến tiêu chuẩn chất lượng
type QualityStandardService struct {
	*basesvc.BaseServiceMongoImpl[models.QualityStandard]
}

// NewQualityStandardService tạo mới QualityStandardService
func NewQualityStandardService() (*QualityStandardService, error) {
	qsCollection, exist := global.RegistryCollections.Get(global.ColNames.QualityStandards)
	if !exist {
		return nil, fmt.Errorf("failed to get quality standards collection: %v", common.ErrNotFound)
	}
	return &QualityStandardService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.QualityStandard](qsCollection),
	}, nil
}

// RuleCheckResult là kết quả đối chiếu một rule với giá trị đo thực tế.
type RuleCheckResult struct {
	StandardName string  `json:"standardName" bson:"standardName"`
	Field        string  `json:"field" bson:"field"`
	Measured     float64 `json:"measured" bson:"measured"`
	Min          float64 `json:"min" bson:"min"`
	Max          float64 `json:"max" bson:"max"`
	Passed       bool    `json:"passed" bson:"passed"`
}

// Evaluate đối chiếu các giá trị đo với toàn bộ rule của các bộ tiêu chuẩn.
// Rule không có giá trị đo tương ứng bị coi là không đạt (thiếu số liệu kiểm định).
func (s *QualityStandardService) Evaluate(ctx context.Context, standardIDs []primitive.ObjectID, measurements map[string]float64) ([]RuleCheckResult, bool, error) {
	if len(standardIDs) == 0 {
		return nil, true, nil
	}

	standards, err := s.Find(ctx, bson.M{"_id": bson.M{"$in": standardIDs}}, nil)
	if err != nil {
		return nil, false, common.ConvertMongoError(err)
	}

	results := make([]RuleCheckResult, 0)
	allPassed := true
	for _, standard := range standards {
		for _, rule := range standard.Rules {
			measured, hasMeasurement := measurements[rule.Field]
			passed := hasMeasurement && measured >= rule.Min && measured <= rule.Max
			if !passed {
				allPassed = false
			}
			results = append(results, RuleCheckResult{
				StandardName: standard.Name,
				Field:        rule.Field,
				Measured:     measured,
				Min:          rule.Min,
				Max:          rule.Max,
				Passed:       passed,
			})
		}
	}
	return results, allPassed, nil
}
