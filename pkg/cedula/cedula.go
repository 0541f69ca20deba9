package cedula

import (
	"fmt"
	"unicode"
)

// coeficientes para el dígito verificador de la cédula ecuatoriana (módulo 10).
// Se aplican a los 9 primeros dígitos, de izquierda a derecha; los productos
// mayores a 9 se reducen restando 9.
var coeficientes = [9]int{2, 1, 2, 1, 2, 1, 2, 1, 2}

// ValidarCedula valida una cédula ecuatoriana de 10 dígitos: código de
// provincia (01-24), tercer dígito menor a 6 (persona natural) y dígito
// verificador correcto según el algoritmo módulo 10 del Registro Civil.
// Acepta el número con o sin separadores ("171234567-8" o "1712345678").
func ValidarCedula(numero string) error {
	digits := extraerDigitos(numero)
	if len(digits) != 10 {
		return fmt.Errorf("cedula: se requieren 10 dígitos, se encontraron %d", len(digits))
	}
	provincia := int(digits[0]-'0')*10 + int(digits[1]-'0')
	if provincia < 1 || provincia > 24 {
		return fmt.Errorf("cedula: código de provincia inválido: %02d", provincia)
	}
	if digits[2]-'0' >= 6 {
		return fmt.Errorf("cedula: tercer dígito inválido para persona natural: %c", digits[2])
	}
	esperado := digitoVerificador(digits[:9])
	if digits[9] != esperado {
		return fmt.Errorf("cedula: dígito verificador inválido: esperado %c, recibido %c", esperado, digits[9])
	}
	return nil
}

// ValidarRUC valida un RUC de persona natural: cédula válida de 10 dígitos
// más el sufijo de establecimiento "001".
func ValidarRUC(numero string) error {
	digits := extraerDigitos(numero)
	if len(digits) != 13 {
		return fmt.Errorf("cedula: RUC debe tener 13 dígitos, se encontraron %d", len(digits))
	}
	if err := ValidarCedula(string(digits[:10])); err != nil {
		return err
	}
	if string(digits[10:]) != "001" {
		return fmt.Errorf("cedula: sufijo de establecimiento del RUC inválido: %s", string(digits[10:]))
	}
	return nil
}

// CalcularDigitoVerificador calcula el dígito verificador para los 9 primeros
// dígitos de una cédula. Útil para generar números de prueba.
func CalcularDigitoVerificador(numero string) (byte, error) {
	digits := extraerDigitos(numero)
	if len(digits) < 9 {
		return 0, fmt.Errorf("cedula: se requieren al menos 9 dígitos, se encontraron %d", len(digits))
	}
	return digitoVerificador(digits[:9]), nil
}

func digitoVerificador(base []byte) byte {
	var sum int
	for i, d := range base {
		p := int(d-'0') * coeficientes[i]
		if p > 9 {
			p -= 9
		}
		sum += p
	}
	return byte('0' + (10-sum%10)%10)
}

func extraerDigitos(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
