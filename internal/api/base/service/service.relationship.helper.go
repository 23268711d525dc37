package basesvc

import (
	"context"
	"edu_accredit/internal/common"
	"edu_accredit/internal/global"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelationshipCheck dinh nghia mot quan he can kiem tra
type RelationshipCheck struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string
	Optional       bool
}

// CheckRelationshipExists kiem tra co record nao trong collection khac dang tro toi record nay khong
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
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
				errorMsg = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// GetRelationshipCount tra ve so luong record dang tham chieu toi record nay
func GetRelationshipCount(ctx context.Context, recordID primitive.ObjectID, collectionName, fieldName string) (int64, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return 0, common.NewError(common.ErrCodeInternalServer, fmt.Sprintf("Khong tim thay collection '%s'", collectionName), common.StatusInternalServerError, nil)
	}
	filter := bson.M{fieldName: recordID}
	return collection.CountDocuments(ctx, filter)
}

// ValidateBeforeDeleteAcademicYear kiem tra cac quan he cua AcademicYear truoc khi xoa
func ValidateBeforeDeleteAcademicYear(ctx context.Context, yearID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Reports, FieldName: "academicYearId", ErrorMessage: "Khong the xoa nam hoc vi co %d bao cao truc thuoc. Vui long xoa cac bao cao truoc."},
		{CollectionName: global.MongoDB_ColNames.ReportRequests, FieldName: "academicYearId", ErrorMessage: "Khong the xoa nam hoc vi co %d yeu cau viet bao cao truc thuoc. Vui long xoa cac yeu cau truoc."},
	}
	return CheckRelationshipExists(ctx, yearID, checks)
}

// ValidateBeforeDeleteStandard kiem tra cac quan he cua Standard truoc khi xoa
func ValidateBeforeDeleteStandard(ctx context.Context, standardID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Criterias, FieldName: "standardId", ErrorMessage: "Khong the xoa tieu chuan vi co %d tieu chi truc thuoc. Vui long xoa cac tieu chi truoc."},
		{CollectionName: global.MongoDB_ColNames.Reports, FieldName: "standardId", ErrorMessage: "Khong the xoa tieu chuan vi co %d bao cao dang tham chieu toi."},
	}
	return CheckRelationshipExists(ctx, standardID, checks)
}

// ValidateBeforeDeleteCriteria kiem tra cac quan he cua Criteria truoc khi xoa
func ValidateBeforeDeleteCriteria(ctx context.Context, criteriaID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Reports, FieldName: "criteriaId", ErrorMessage: "Khong the xoa tieu chi vi co %d bao cao dang tham chieu toi."},
	}
	return CheckRelationshipExists(ctx, criteriaID, checks)
}

// ValidateBeforeDeleteUser kiem tra cac quan he cua User truoc khi xoa
func ValidateBeforeDeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.ReportRequests, FieldName: "assignedTo", ErrorMessage: "Khong the xoa nguoi dung vi co %d yeu cau viet bao cao dang giao cho nguoi nay. Vui long thu hoi cac yeu cau truoc."},
	}
	return CheckRelationshipExists(ctx, userID, checks)
}

// ValidateBeforeDeleteProgram kiem tra cac quan he cua Program truoc khi xoa
func ValidateBeforeDeleteProgram(ctx context.Context, programID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Standards, FieldName: "programId", ErrorMessage: "Khong the xoa chuong trinh vi co %d tieu chuan truc thuoc."},
		{CollectionName: global.MongoDB_ColNames.Reports, FieldName: "programId", ErrorMessage: "Khong the xoa chuong trinh vi co %d bao cao dang tham chieu toi."},
	}
	return CheckRelationshipExists(ctx, programID, checks)
}

// ValidateBeforeDeleteOrganization kiem tra cac quan he cua Organization truoc khi xoa
func ValidateBeforeDeleteOrganization(ctx context.Context, orgID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Standards, FieldName: "organizationId", ErrorMessage: "Khong the xoa to chuc vi co %d tieu chuan truc thuoc."},
		{CollectionName: global.MongoDB_ColNames.Reports, FieldName: "organizationId", ErrorMessage: "Khong the xoa to chuc vi co %d bao cao dang tham chieu toi."},
	}
	return CheckRelationshipExists(ctx, orgID, checks)
}
