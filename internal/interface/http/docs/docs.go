// Package docs Swagger文档（swag init -g internal/interface/http/router/router.go -o internal/interface/http/docs）
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/books": {
            "get": {
                "description": "按书名（不区分大小写的子串）、作者、分类筛选，返回指定页的预览卡片。title、author、genre三个参数必须同时提供，author/genre为any表示不限",
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "搜索图书",
                "parameters": [
                    {"type": "string", "description": "书名关键词（可为空）", "name": "title", "in": "query", "required": true},
                    {"type": "string", "description": "作者ID或any", "name": "author", "in": "query", "required": true},
                    {"type": "string", "description": "分类ID或any", "name": "genre", "in": "query", "required": true},
                    {"type": "integer", "default": 1, "description": "页码（从1开始）", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.BookListResponse"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/books/{id}": {
            "get": {
                "description": "点击预览卡片时调用，返回详情浮层内容",
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "图书详情",
                "parameters": [
                    {"type": "string", "description": "图书ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.BookDetailResponse"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/options": {
            "get": {
                "description": "第一项固定为 All Authors / All Genres（value=any），其余按数据集顺序",
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "下拉选项",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.OptionsResponse"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/themes/{name}": {
            "get": {
                "description": "night返回夜间配色，其他任意值返回日间配色",
                "produces": ["application/json"],
                "tags": ["设置"],
                "summary": "主题配色",
                "parameters": [
                    {"type": "string", "description": "主题名称（day/night）", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.ThemeResponse"}}}
                            ]
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "catalog.Option": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "dto.BookDetailResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "example": "On the desert planet Arrakis..."},
                "id": {"type": "string", "example": "6f1c4a52-1d0b-5a34-9d6c-3b8f7f0e2a11"},
                "image": {"type": "string", "example": "https://covers.openlibrary.org/b/id/8100014-L.jpg"},
                "subtitle": {"type": "string", "example": "Frank Herbert (1965)"},
                "title": {"type": "string", "example": "Dune"}
            }
        },
        "dto.BookListResponse": {
            "type": "object",
            "properties": {
                "empty": {"type": "boolean", "example": false},
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.PreviewItem"}},
                "page": {"type": "integer", "example": 1},
                "page_size": {"type": "integer", "example": 36},
                "remaining": {"type": "integer", "example": 3},
                "show_more": {"$ref": "#/definitions/dto.ShowMore"},
                "total": {"type": "integer", "example": 39},
                "total_pages": {"type": "integer", "example": 2}
            }
        },
        "dto.OptionsResponse": {
            "type": "object",
            "properties": {
                "authors": {"type": "array", "items": {"$ref": "#/definitions/catalog.Option"}},
                "genres": {"type": "array", "items": {"$ref": "#/definitions/catalog.Option"}}
            }
        },
        "dto.PreviewItem": {
            "type": "object",
            "properties": {
                "author": {"type": "string", "example": "Frank Herbert"},
                "id": {"type": "string", "example": "6f1c4a52-1d0b-5a34-9d6c-3b8f7f0e2a11"},
                "image": {"type": "string", "example": "https://covers.openlibrary.org/b/id/8100014-L.jpg"},
                "title": {"type": "string", "example": "Dune"}
            }
        },
        "dto.ShowMore": {
            "type": "object",
            "properties": {
                "disabled": {"type": "boolean", "example": false},
                "label": {"type": "string", "example": "Show more (3)"}
            }
        },
        "dto.ThemeResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "night"},
                "variables": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Book Catalog API",
	Description:      "图书目录浏览API：搜索、分页、详情、主题",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
