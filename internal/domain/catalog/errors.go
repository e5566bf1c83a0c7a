package catalog

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 图书目录领域错误定义
var (
	// ErrBookNotFound 图书不存在(选择预览时ID无法匹配)
	// 调用方应当忽略该错误(不打开详情),而不是当作致命错误
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrInvalidCriteria 筛选条件缺少字段
	ErrInvalidCriteria = apperrors.New(apperrors.ErrCodeInvalidFilter, "筛选条件不完整")

	// ErrInvalidPageSize 每页数量必须大于0
	ErrInvalidPageSize = apperrors.New(apperrors.ErrCodePageSize, "每页数量必须大于0")

	// ErrDuplicateBookID 图书ID重复
	ErrDuplicateBookID = apperrors.New(apperrors.ErrCodeDuplicateBook, "图书ID重复")

	// ErrEmptyBookID 图书ID为空
	ErrEmptyBookID = apperrors.New(apperrors.ErrCodeInvalidData, "图书ID不能为空")

	// ErrUnknownAuthor 图书引用了不存在的作者
	ErrUnknownAuthor = apperrors.New(apperrors.ErrCodeUnknownAuthor, "作者不存在")

	// ErrUnknownGenre 图书引用了不存在的分类
	ErrUnknownGenre = apperrors.New(apperrors.ErrCodeUnknownGenre, "分类不存在")
)
