// seed crea o actualiza cuentas de acceso para SIGERH.
//
// Sin argumentos inserta la cuenta inicial de RR.HH. (rrhh.user / 12345) para
// poder probar la aplicación. Con -csv carga cuentas en lote desde un archivo
// exportado por el sistema legado (codificación Latin-1, separado por ';'):
//
//	username;password;rol;rut_trabajador
//
// Uso: go run ./cmd/seed [-csv ruta/cuentas.csv]
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/Diego-69/taller-aplicaciones/internal/domain/entity"
	"github.com/Diego-69/taller-aplicaciones/internal/infrastructure/postgres"
	"github.com/Diego-69/taller-aplicaciones/pkg/config"
)

const upsertCredential = `
	INSERT INTO usuario (id, username, password_hash, rol_id, rut_trabajador, activo)
	VALUES ($1, $2, $3, (SELECT id FROM rol WHERE nombre = $4), NULLIF($5, ''), TRUE)
	ON CONFLICT (username) DO UPDATE
	SET password_hash = EXCLUDED.password_hash,
	    rol_id        = EXCLUDED.rol_id,
	    rut_trabajador = EXCLUDED.rut_trabajador,
	    activo        = TRUE`

func main() {
	csvPath := flag.String("csv", "", "archivo CSV Latin-1 con cuentas (username;password;rol;rut_trabajador)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if *csvPath != "" {
		n, err := seedFromCSV(ctx, pool, *csvPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Carga desde CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cargadas %d cuentas desde %s\n", n, *csvPath)
		return
	}

	// Cuenta inicial de gestión. No se asocia a un rut_trabajador porque es
	// un rol de gestión general.
	if err := upsertAccount(ctx, pool, "rrhh.user", "12345", entity.RoleRRHH, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario inicial: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Usuario 'rrhh.user' creado/actualizado exitosamente.")
	fmt.Println("Puedes iniciar sesión con usuario: rrhh.user y contraseña: 12345")
}

func upsertAccount(ctx context.Context, pool *pgxpool.Pool, username, password, role, workerRUT string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashear contraseña de %q: %w", username, err)
	}
	_, err = pool.Exec(ctx, upsertCredential,
		uuid.New().String(), username, string(hash), role, workerRUT,
	)
	if err != nil {
		return fmt.Errorf("upsert de %q: %w", username, err)
	}
	return nil
}

// seedFromCSV carga cuentas desde un export del sistema legado. El archivo
// viene en Latin-1 (client_encoding del sistema anterior), así que se
// transcodifica a UTF-8 al leer.
func seedFromCSV(ctx context.Context, pool *pgxpool.Pool, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 4

	var n int
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, fmt.Errorf("leer CSV (línea %d): %w", n+1, err)
		}
		username := strings.TrimSpace(record[0])
		if username == "" || strings.EqualFold(username, "username") {
			continue // cabecera o línea vacía
		}
		password := record[1]
		role := strings.TrimSpace(record[2])
		rut := strings.TrimSpace(record[3])
		if err := upsertAccount(ctx, pool, username, password, role, rut); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
