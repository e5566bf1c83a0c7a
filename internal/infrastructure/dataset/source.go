package dataset

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

//go:embed data/books.json
var embeddedBooks []byte

// EmbeddedSource 编译进二进制的内置数据集
type EmbeddedSource struct {
	pageSize int
}

// NewEmbeddedSource 创建内置数据源，pageSize>0时覆盖数据集设置
func NewEmbeddedSource(pageSize int) *EmbeddedSource {
	return &EmbeddedSource{pageSize: pageSize}
}

// Load 实现catalog.Source接口
func (s *EmbeddedSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := Decode(embeddedBooks, FormatJSON)
	if err != nil {
		return nil, err
	}
	return doc.ToCatalog(s.pageSize)
}

// FileSource 本地数据集文件（.json / .yaml / .yml）
type FileSource struct {
	path     string
	pageSize int
}

// NewFileSource 创建文件数据源
func NewFileSource(path string, pageSize int) *FileSource {
	return &FileSource{path: path, pageSize: pageSize}
}

// Load 实现catalog.Source接口
func (s *FileSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := FormatFromPath(s.path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &apperrors.AppError{
			Code:    apperrors.ErrCodeDatasetError,
			Message: fmt.Sprintf("读取数据集文件失败: %s", s.path),
			Err:     err,
		}
	}

	doc, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return doc.ToCatalog(s.pageSize)
}
