package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/icei-ads/portal-eventos/config"
	"github.com/icei-ads/portal-eventos/database"
)

// Offline database CLI: persists the registry entity shapes to flat JSON
// files, independent of the PostgreSQL store. Used for export/import and
// for working without a running database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	getEnv, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store := database.NewFileStore(getEnv.DATA_DIR)

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		return
	}

	fmt.Println("📦 CLI de Banco de Dados Offline")
	fmt.Println()

	command := args[0]
	switch command {
	case "list":
		tipo := "professores"
		if len(args) > 1 {
			tipo = args[1]
		}
		data, err := store.Load(tipo)
		if err != nil {
			log.Fatalf("❌ Erro ao carregar %s: %v", tipo, err)
		}
		fmt.Printf("📋 %s:\n", tipo)
		printJSON(data)

	case "add":
		if len(args) < 3 {
			fmt.Println("❌ Uso: dbcli add <tipo> <dados-json>")
			fmt.Println(`   Ex: dbcli add professores '{"nome":"Prof. João", "email":"joao@puc.br", "senha":"123", "curso":"ADS"}'`)
			os.Exit(1)
		}
		item, err := parseRegistro(args[2])
		if err != nil {
			log.Fatal("❌ JSON inválido")
		}
		added, err := store.Add(args[1], item)
		if err != nil {
			log.Fatalf("❌ Erro ao adicionar: %v", err)
		}
		fmt.Println("✅ Item adicionado:")
		printJSON(added)

	case "update":
		if len(args) < 4 {
			fmt.Println("❌ Uso: dbcli update <tipo> <id> <dados-json>")
			os.Exit(1)
		}
		id := parseID(args[2])
		updates, err := parseRegistro(args[3])
		if err != nil {
			log.Fatal("❌ JSON inválido")
		}
		updated, err := store.Update(args[1], id, updates)
		if err != nil {
			log.Fatalf("❌ Item com id %d não encontrado", id)
		}
		fmt.Printf("✅ Item %d atualizado:\n", id)
		printJSON(updated)

	case "delete":
		if len(args) < 3 {
			fmt.Println("❌ Uso: dbcli delete <tipo> <id>")
			os.Exit(1)
		}
		id := parseID(args[2])
		if err := store.Delete(args[1], id); err != nil {
			log.Fatalf("❌ Item com id %d não encontrado", id)
		}
		fmt.Printf("✅ Item %d deletado\n", id)

	case "clear":
		if len(args) < 2 {
			fmt.Println("❌ Uso: dbcli clear <tipo>")
			os.Exit(1)
		}
		if err := store.Clear(args[1]); err != nil {
			log.Fatalf("❌ Erro ao limpar %s: %v", args[1], err)
		}
		fmt.Printf("✅ Todos os %s foram deletados\n", args[1])

	case "export":
		tipo := "all"
		if len(args) > 1 {
			tipo = args[1]
		}
		if tipo == "all" {
			path, err := store.ExportAll(getEnv.EXPORT_DIR, database.TiposOffline)
			if err != nil {
				log.Fatalf("❌ Erro ao exportar: %v", err)
			}
			fmt.Printf("✅ Banco exportado para %s\n", path)
		} else {
			path, err := store.Export(tipo, getEnv.EXPORT_DIR)
			if err != nil {
				log.Fatalf("❌ Erro ao exportar %s: %v", tipo, err)
			}
			fmt.Printf("✅ %s exportado para %s\n", tipo, path)
		}

	default:
		usage()
	}
}

func usage() {
	fmt.Println("Comandos disponíveis:")
	fmt.Println("  list [tipo]              - Listar todos os itens")
	fmt.Println("  add <tipo> <dados-json>  - Adicionar novo item")
	fmt.Println("  update <tipo> <id> <json>- Atualizar item")
	fmt.Println("  delete <tipo> <id>       - Deletar item")
	fmt.Println("  clear <tipo>             - Limpar todos")
	fmt.Println("  export [tipo]            - Exportar dados para JSON")
	fmt.Println()
	fmt.Println("Exemplos:")
	fmt.Println("  dbcli list professores")
	fmt.Println(`  dbcli add professores '{"nome":"Prof. João", "email":"joao@puc.br", "senha":"123", "curso":"ADS"}'`)
	fmt.Println("  dbcli delete professores 1")
}

func parseRegistro(raw string) (database.Registro, error) {
	var item database.Registro
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, err
	}
	return item, nil
}

func parseID(raw string) int {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		log.Fatalf("❌ ID inválido: %s", raw)
	}
	return id
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("❌ Erro ao serializar: %v", err)
	}
	fmt.Println(string(out))
}
