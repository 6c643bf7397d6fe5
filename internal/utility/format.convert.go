package utility

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển đổi chuỗi thành ObjectID
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}
