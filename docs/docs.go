// Package docs contém a especificação OpenAPI servida em /swagger.
// Regenere com: swag init -g cmd/api/main.go
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
        "/auth/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Login",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/auth/signup": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Cadastro",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SignupRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/users/profile": {
            "put": {
                "tags": [
                    "auth"
                ],
                "summary": "Atualizar perfil",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateProfileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/posts": {
            "get": {
                "tags": [
                    "posts"
                ],
                "summary": "Listar publicações",
                "produces": [
                    "application/json"
                ],
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.PostResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "posts"
                ],
                "summary": "Criar publicação",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreatePostRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.PostResponse"
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/posts/{id}/like": {
            "post": {
                "tags": [
                    "posts"
                ],
                "summary": "Curtir publicação",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "ID da publicação"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LikePostRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PostResponse"
                        }
                    },
                    "404": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/properties": {
            "get": {
                "tags": [
                    "properties"
                ],
                "summary": "Buscar imóveis",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "city",
                        "required": false,
                        "type": "string",
                        "description": ""
                    },
                    {
                        "in": "query",
                        "name": "neighborhood",
                        "required": false,
                        "type": "string",
                        "description": ""
                    },
                    {
                        "in": "query",
                        "name": "type",
                        "required": false,
                        "type": "string",
                        "description": ""
                    },
                    {
                        "in": "query",
                        "name": "maxPrice",
                        "required": false,
                        "type": "number",
                        "description": ""
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.PropertyResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "properties"
                ],
                "summary": "Criar imóvel",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreatePropertyRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.PropertyResponse"
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/properties/{id}": {
            "get": {
                "tags": [
                    "properties"
                ],
                "summary": "Detalhe do imóvel",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "ID do imóvel"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PropertyResponse"
                        }
                    },
                    "404": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/properties/{id}/photos": {
            "put": {
                "tags": [
                    "properties"
                ],
                "summary": "Atualizar fotos",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "ID do imóvel"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdatePhotosRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PropertyResponse"
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/properties/{id}/views": {
            "post": {
                "tags": [
                    "properties"
                ],
                "summary": "Registrar visualização",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "ID do imóvel"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.PropertyViewResponse"
                        }
                    },
                    "404": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/favorites": {
            "post": {
                "tags": [
                    "favorites"
                ],
                "summary": "Adicionar favorito",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.FavoriteRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            },
            "get": {
                "tags": [
                    "favorites"
                ],
                "summary": "Listar favoritos",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "user_email",
                        "required": true,
                        "type": "string",
                        "description": ""
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.FavoritePropertyResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/favorites/{propertyId}": {
            "delete": {
                "tags": [
                    "favorites"
                ],
                "summary": "Remover favorito",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "propertyId",
                        "required": true,
                        "type": "integer",
                        "description": "ID do imóvel"
                    },
                    {
                        "in": "query",
                        "name": "user_email",
                        "required": true,
                        "type": "string",
                        "description": ""
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/interactions": {
            "post": {
                "tags": [
                    "interactions"
                ],
                "summary": "Registrar interação",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.InteractionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/interactions/stats/{propertyId}": {
            "get": {
                "tags": [
                    "interactions"
                ],
                "summary": "Estatísticas de interação",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "propertyId",
                        "required": true,
                        "type": "integer",
                        "description": "ID do imóvel"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InteractionStatsResponse"
                        }
                    }
                }
            }
        },
        "/owner/dashboard": {
            "get": {
                "tags": [
                    "owner"
                ],
                "summary": "Painel do proprietário",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "owner_email",
                        "required": true,
                        "type": "string",
                        "description": ""
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DashboardResponse"
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/owner/properties": {
            "get": {
                "tags": [
                    "owner"
                ],
                "summary": "Imóveis do proprietário",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "owner_email",
                        "required": true,
                        "type": "string",
                        "description": ""
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.OwnerPropertyResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/owner/leads": {
            "get": {
                "tags": [
                    "owner"
                ],
                "summary": "Leads do proprietário",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "owner_email",
                        "required": true,
                        "type": "string",
                        "description": ""
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.OwnerLeadResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/owner/leads/{id}": {
            "put": {
                "tags": [
                    "owner"
                ],
                "summary": "Atualizar status do lead",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "ID do lead"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateLeadStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LeadResponse"
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/leads": {
            "post": {
                "tags": [
                    "leads"
                ],
                "summary": "Criar lead",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateLeadRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.LeadResponse"
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/chats": {
            "get": {
                "tags": [
                    "chats"
                ],
                "summary": "Listar conversas",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "user_email",
                        "required": true,
                        "type": "string",
                        "description": ""
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.ChatSummaryResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "chats"
                ],
                "summary": "Criar ou obter conversa",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateChatRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ChatResponse"
                        }
                    },
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.ChatResponse"
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/chats/{id}/messages": {
            "get": {
                "tags": [
                    "chats"
                ],
                "summary": "Mensagens da conversa",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "ID da conversa"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.MessageResponse"
                            }
                        }
                    }
                }
            }
        },
        "/chats/{id}/ws": {
            "get": {
                "tags": [
                    "chats"
                ],
                "summary": "Stream de mensagens",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "ID da conversa"
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Upgrade para WebSocket",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/messages": {
            "post": {
                "tags": [
                    "chats"
                ],
                "summary": "Enviar mensagem",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SendMessageRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/notifications": {
            "get": {
                "tags": [
                    "notifications"
                ],
                "summary": "Listar notificações",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "query",
                        "name": "user_email",
                        "required": true,
                        "type": "string",
                        "description": ""
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.NotificationResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/notifications/{id}/read": {
            "put": {
                "tags": [
                    "notifications"
                ],
                "summary": "Marcar como lida",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer",
                        "description": "ID da notificação"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.NotificationResponse"
                        }
                    },
                    "404": {
                        "description": "Problem details",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.ValidationError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "tag": {
                    "type": "string"
                }
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                },
                "detail": {
                    "type": "string"
                },
                "instance": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ValidationError"
                    }
                }
            }
        },
        "dto.SuccessResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                }
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ]
        },
        "dto.SignupRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "user_type": {
                    "type": "string",
                    "enum": [
                        "tenant",
                        "owner"
                    ]
                }
            },
            "required": [
                "name",
                "email",
                "password"
            ]
        },
        "dto.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "points": {
                    "type": "integer"
                },
                "stars": {
                    "type": "number"
                },
                "user_type": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "verified": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "dto.AuthResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "user": {
                    "$ref": "#/definitions/dto.UserResponse"
                },
                "token": {
                    "type": "string"
                }
            }
        },
        "dto.CreatePostRequest": {
            "type": "object",
            "properties": {
                "author": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "time": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "media_type": {
                    "type": "string"
                },
                "tagged_property_id": {
                    "type": "integer"
                },
                "post_type": {
                    "type": "string"
                },
                "property_id": {
                    "type": "integer"
                }
            },
            "required": [
                "author",
                "content"
            ]
        },
        "dto.LikePostRequest": {
            "type": "object",
            "properties": {
                "liked": {
                    "type": "boolean"
                }
            },
            "required": [
                "liked"
            ]
        },
        "dto.PostResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "author": {
                    "type": "string"
                },
                "time": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "media_type": {
                    "type": "string"
                },
                "tagged_property_id": {
                    "type": "integer"
                },
                "post_type": {
                    "type": "string"
                },
                "property_id": {
                    "type": "integer"
                },
                "likes": {
                    "type": "integer"
                },
                "liked_by_me": {
                    "type": "boolean"
                }
            }
        },
        "dto.CreatePropertyRequest": {
            "type": "object",
            "properties": {
                "owner_email": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "neighborhood": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "type": {
                    "type": "string"
                },
                "image_url": {
                    "type": "string"
                },
                "media_type": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "condo_fee": {
                    "type": "number"
                },
                "iptu": {
                    "type": "number"
                },
                "accepts_pets": {
                    "type": "boolean"
                },
                "is_furnished": {
                    "type": "boolean"
                },
                "guarantee_type": {
                    "type": "string"
                },
                "availability_date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            },
            "required": [
                "owner_email",
                "title",
                "city",
                "price"
            ]
        },
        "dto.UpdatePhotosRequest": {
            "type": "object",
            "properties": {
                "photos": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            },
            "required": [
                "photos"
            ]
        },
        "dto.PropertyResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "owner_email": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "neighborhood": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "type": {
                    "type": "string"
                },
                "image_url": {
                    "type": "string"
                },
                "media_type": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "condo_fee": {
                    "type": "number"
                },
                "iptu": {
                    "type": "number"
                },
                "accepts_pets": {
                    "type": "boolean"
                },
                "is_furnished": {
                    "type": "boolean"
                },
                "guarantee_type": {
                    "type": "string"
                },
                "availability_date": {
                    "type": "string"
                },
                "photos": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "verified_photos": {
                    "type": "boolean"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "dto.PropertyViewResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "property_id": {
                    "type": "integer"
                },
                "user_email": {
                    "type": "string"
                },
                "viewed_at": {
                    "type": "string"
                }
            }
        },
        "dto.FavoriteRequest": {
            "type": "object",
            "properties": {
                "user_email": {
                    "type": "string"
                },
                "property_id": {
                    "type": "integer"
                }
            },
            "required": [
                "user_email",
                "property_id"
            ]
        },
        "dto.FavoritePropertyResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "owner_email": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "neighborhood": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "type": {
                    "type": "string"
                },
                "image_url": {
                    "type": "string"
                },
                "media_type": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "condo_fee": {
                    "type": "number"
                },
                "iptu": {
                    "type": "number"
                },
                "accepts_pets": {
                    "type": "boolean"
                },
                "is_furnished": {
                    "type": "boolean"
                },
                "guarantee_type": {
                    "type": "string"
                },
                "availability_date": {
                    "type": "string"
                },
                "photos": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "verified_photos": {
                    "type": "boolean"
                },
                "description": {
                    "type": "string"
                },
                "favorited_at": {
                    "type": "string"
                }
            }
        },
        "dto.InteractionRequest": {
            "type": "object",
            "properties": {
                "user_email": {
                    "type": "string"
                },
                "property_id": {
                    "type": "integer"
                },
                "interaction_type": {
                    "type": "string"
                }
            },
            "required": [
                "user_email",
                "property_id",
                "interaction_type"
            ]
        },
        "dto.InteractionCountResponse": {
            "type": "object",
            "properties": {
                "interaction_type": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "dto.InteractionStatsResponse": {
            "type": "object",
            "properties": {
                "interactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.InteractionCountResponse"
                    }
                },
                "favorites": {
                    "type": "integer"
                }
            }
        },
        "dto.DashboardResponse": {
            "type": "object",
            "properties": {
                "total_properties": {
                    "type": "integer"
                },
                "total_leads": {
                    "type": "integer"
                },
                "total_views": {
                    "type": "integer"
                },
                "properties_by_status": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                }
            }
        },
        "dto.OwnerPropertyResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "owner_email": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "neighborhood": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "type": {
                    "type": "string"
                },
                "image_url": {
                    "type": "string"
                },
                "media_type": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "condo_fee": {
                    "type": "number"
                },
                "iptu": {
                    "type": "number"
                },
                "accepts_pets": {
                    "type": "boolean"
                },
                "is_furnished": {
                    "type": "boolean"
                },
                "guarantee_type": {
                    "type": "string"
                },
                "availability_date": {
                    "type": "string"
                },
                "photos": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "verified_photos": {
                    "type": "boolean"
                },
                "description": {
                    "type": "string"
                },
                "views": {
                    "type": "integer"
                },
                "favorites": {
                    "type": "integer"
                },
                "leads": {
                    "type": "integer"
                }
            }
        },
        "dto.CreateLeadRequest": {
            "type": "object",
            "properties": {
                "property_id": {
                    "type": "integer"
                },
                "user_email": {
                    "type": "string"
                },
                "user_name": {
                    "type": "string"
                }
            },
            "required": [
                "property_id",
                "user_email",
                "user_name"
            ]
        },
        "dto.UpdateLeadStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            },
            "required": [
                "status"
            ]
        },
        "dto.LeadResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "property_id": {
                    "type": "integer"
                },
                "user_email": {
                    "type": "string"
                },
                "user_name": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "dto.OwnerLeadResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "property_id": {
                    "type": "integer"
                },
                "user_email": {
                    "type": "string"
                },
                "user_name": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "property_title": {
                    "type": "string"
                },
                "property_price": {
                    "type": "number"
                },
                "property_neighborhood": {
                    "type": "string"
                }
            }
        },
        "dto.CreateChatRequest": {
            "type": "object",
            "properties": {
                "user1_email": {
                    "type": "string"
                },
                "user2_email": {
                    "type": "string"
                }
            },
            "required": [
                "user1_email",
                "user2_email"
            ]
        },
        "dto.ChatResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "user1_email": {
                    "type": "string"
                },
                "user2_email": {
                    "type": "string"
                },
                "last_message_at": {
                    "type": "string"
                }
            }
        },
        "dto.ChatSummaryResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "user1_email": {
                    "type": "string"
                },
                "user2_email": {
                    "type": "string"
                },
                "last_message_at": {
                    "type": "string"
                },
                "other_user_email": {
                    "type": "string"
                },
                "last_message": {
                    "type": "string"
                },
                "last_message_time": {
                    "type": "string"
                }
            }
        },
        "dto.SendMessageRequest": {
            "type": "object",
            "properties": {
                "chat_id": {
                    "type": "integer"
                },
                "sender_email": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "message_type": {
                    "type": "string"
                },
                "related_id": {
                    "type": "integer"
                }
            },
            "required": [
                "chat_id",
                "sender_email",
                "content"
            ]
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "chat_id": {
                    "type": "integer"
                },
                "sender_email": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "message_type": {
                    "type": "string"
                },
                "related_id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "dto.NotificationResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "user_email": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "related_id": {
                    "type": "integer"
                },
                "read": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo guarda os metadados exportados da especificação
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "InHouse API",
	Description:      "Marketplace social de aluguel de imóveis",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
