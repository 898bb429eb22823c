package cookiedomain

import (
	"net"
	"net/http"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// RegistrableDomainFunc calcula o domínio registrável (eTLD+1) de um host.
// Injetável para permitir listas de sufixos alternativas em testes.
type RegistrableDomainFunc func(host string) (string, error)

// Resolver deriva o atributo Domain dos cookies de sessão a partir do host
// efetivo da requisição. O mesmo resolver atende login, refresh e logout,
// garantindo que os três produzam atributos idênticos.
type Resolver struct {
	configuredDomain string
	serverHost       string
	allowedHosts     map[string]struct{}
	registrable      RegistrableDomainFunc
}

func NewResolver(configuredDomain, serverHost string, allowedHosts []string, registrable RegistrableDomainFunc) *Resolver {
	if registrable == nil {
		registrable = publicsuffix.EffectiveTLDPlusOne
	}

	allowed := make(map[string]struct{}, len(allowedHosts))
	for _, host := range allowedHosts {
		if normalized := normalizeHost(host); normalized != "" {
			allowed[normalized] = struct{}{}
		}
	}

	return &Resolver{
		configuredDomain: strings.TrimSpace(configuredDomain),
		serverHost:       normalizeHost(serverHost),
		allowedHosts:     allowed,
		registrable:      registrable,
	}
}

// Resolve retorna o domínio a carimbar no cookie, ou vazio para cookie
// host-only (o default seguro quando o host não é resolvível, não tem
// ponto ou é um IP literal).
func (r *Resolver) Resolve(req *http.Request) string {
	// Override do operador vence sempre
	if r.configuredDomain != "" {
		return r.configuredDomain
	}

	host := r.EffectiveHost(req)
	if host == "" || !strings.Contains(host, ".") || net.ParseIP(host) != nil {
		return ""
	}

	registrable, err := r.registrable(host)
	if err != nil || registrable == "" || registrable == host {
		return host
	}

	// O domínio mais amplo só é usado quando explicitamente confiável
	if _, ok := r.allowedHosts[registrable]; ok {
		return registrable
	}

	return host
}

// EffectiveHost determina o host efetivo da requisição: primeiro valor
// não vazio, normalizado, na ordem de prioridade dos cabeçalhos
func (r *Resolver) EffectiveHost(req *http.Request) string {
	candidates := []string{
		req.Header.Get("X-Forwarded-Host"),
		r.serverHost,
		req.Host,
		req.Header.Get("Origin"),
		req.Header.Get("Referer"),
	}

	for _, candidate := range candidates {
		if host := normalizeHost(candidate); host != "" {
			return host
		}
	}

	return ""
}

// normalizeHost extrai o primeiro token de cabeçalhos multi-valor e remove
// esquema, credenciais, porta, caminho, colchetes IPv6 e pontos finais
func normalizeHost(raw string) string {
	value := raw
	if idx := strings.Index(value, ","); idx >= 0 {
		value = value[:idx]
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if idx := strings.Index(value, "://"); idx >= 0 {
		value = value[idx+3:]
	}

	if idx := strings.IndexAny(value, "/?#"); idx >= 0 {
		value = value[:idx]
	}

	if idx := strings.LastIndex(value, "@"); idx >= 0 {
		value = value[idx+1:]
	}

	value = stripPort(value)
	value = strings.ToLower(value)
	value = strings.TrimRight(value, ".")

	return value
}

func stripPort(hostport string) string {
	if strings.HasPrefix(hostport, "[") {
		if idx := strings.Index(hostport, "]"); idx >= 0 {
			return hostport[1:idx]
		}
		return strings.TrimPrefix(hostport, "[")
	}

	// Um único dois-pontos indica host:porta; vários indicam IPv6 sem colchetes
	if strings.Count(hostport, ":") == 1 {
		if idx := strings.LastIndex(hostport, ":"); idx >= 0 {
			return hostport[:idx]
		}
	}

	return hostport
}
