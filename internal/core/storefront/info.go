package storefront

type InfoKind string

const (
	InfoImpact  InfoKind = "impact"
	InfoCotton  InfoKind = "cotton"
	InfoForest  InfoKind = "forest"
	InfoSupport InfoKind = "support"
	InfoCompany InfoKind = "company"
)

// Info is the content of the informational modal opened from banners and
// footer links.
type Info struct {
	Key        string
	Title      string
	Kind       InfoKind
	Paragraphs []string
	Bullets    []string
}

var infos = map[string]Info{
	"impact": {
		Title: "Nosso Impacto Ambiental",
		Kind:  InfoImpact,
		Paragraphs: []string{
			"1 Camiseta = 10 Árvores Plantadas.",
			"Em parceria com ONGs de reflorestamento ao redor do mundo, garantimos que cada compra sua ajude a recuperar áreas degradadas na Amazônia, Indonésia e África Subsaariana.",
		},
		Bullets: []string{
			"Absorção de CO2 e combate ao aquecimento global.",
			"Recuperação da biodiversidade e habitat animal.",
			"Proteção de bacias hidrográficas e solo.",
			"Geração de renda para comunidades locais.",
		},
	},
	"cotton": {
		Title: "Algodão Orgânico Certificado",
		Kind:  InfoCotton,
		Paragraphs: []string{
			"O toque mais suave que você já sentiu.",
			"Nossas camisetas são produzidas com Algodão Orgânico Certificado GOTS (Global Organic Textile Standard).",
		},
		Bullets: []string{
			"Zero Pesticidas: cultivo livre de químicos tóxicos.",
			"Economia de Água: consumo até 91% menor que o algodão convencional.",
			"Hipoalergênico: perfeito para peles sensíveis.",
			"Durabilidade: fibras naturais duram muito mais.",
		},
	},
	"virtual_forest": {
		Title: "Sua Floresta Virtual",
		Kind:  InfoForest,
		Paragraphs: []string{
			"Cada árvore que você planta através de suas compras aparece na sua Floresta Virtual.",
			"Crie sua conta agora e ganhe suas primeiras 5 árvores digitais de bônus!",
		},
		Bullets: []string{
			"Acompanhe o crescimento a cada pedido.",
			"Espécies reais plantadas pelos nossos parceiros.",
			"Conquistas e badges ao atingir marcos de plantio.",
		},
	},
	"contact": {
		Title: "Fale Conosco",
		Kind:  InfoSupport,
		Paragraphs: []string{
			"Estamos aqui para ajudar! Nosso time atende de Seg a Sex, das 9h às 18h.",
			"E-mail: contato@earthfirst.com.br",
			"WhatsApp: (11) 99999-9999",
		},
	},
	"help_center": {
		Title:      "Central de Ajuda",
		Kind:       InfoSupport,
		Paragraphs: []string{"Encontre tutoriais rápidos sobre:"},
		Bullets: []string{
			"Como cuidar da sua peça de algodão orgânico.",
			"Como resgatar seus pontos de fidelidade.",
			"Como acompanhar a entrega.",
		},
	},
	"shipping": {
		Title:      "Política de Envio",
		Kind:       InfoSupport,
		Paragraphs: []string{"Enviamos para todo o Brasil."},
		Bullets: []string{
			"Frete Grátis em pedidos acima de R$ 300,00.",
			"Prazo de entrega: 3 a 7 dias úteis (Sudeste) e 7 a 15 dias úteis (outras regiões).",
			"Embalagens 100% biodegradáveis e sem plástico.",
		},
	},
	"returns": {
		Title: "Trocas e Devoluções",
		Kind:  InfoSupport,
		Paragraphs: []string{
			"Queremos que você ame sua peça. Se não servir, trocamos fácil.",
			"Você tem 30 dias corridos após o recebimento para solicitar a troca ou devolução gratuita, desde que a peça não tenha sido usada ou lavada.",
		},
	},
	"faq": {
		Title: "Perguntas Frequentes",
		Kind:  InfoSupport,
		Paragraphs: []string{
			"As camisetas encolhem? Nossas peças são pré-encolhidas, mas recomendamos não usar secadora em alta temperatura.",
			"Onde as árvores são plantadas? Atualmente focamos em projetos no Brasil (Mata Atlântica), Madagascar e Indonésia.",
		},
	},
	"find_store": {
		Title: "Encontrar Loja",
		Kind:  InfoCompany,
		Paragraphs: []string{
			"Nascemos no digital, mas estamos expandindo! Visite nosso showroom sustentável:",
			"Rua da Natureza, 123 - Pinheiros, São Paulo - SP",
		},
	},
	"size_guide": {
		Title:      "Guia de Tamanhos",
		Kind:       InfoCompany,
		Paragraphs: []string{"Nossa modelagem é Regular Fit."},
		Bullets: []string{
			"P: Altura 70cm / Largura 50cm",
			"M: Altura 72cm / Largura 52cm",
			"G: Altura 74cm / Largura 54cm",
			"GG: Altura 76cm / Largura 56cm",
		},
	},
	"trade_program": {
		Title: "Programa de Troca",
		Kind:  InfoCompany,
		Paragraphs: []string{
			"Sua camiseta EarthFirst ficou velha? Não jogue fora!",
			"Envie de volta para nós para reciclagem têxtil e ganhe R$ 20 de crédito na compra de uma nova.",
		},
	},
	"reseller": {
		Title: "Seja um Revendedor",
		Kind:  InfoCompany,
		Paragraphs: []string{
			"Leve a EarthFirst para sua loja multimarca.",
			"Condições especiais para atacado a partir de 20 peças: atacado@earthfirst.com.br.",
		},
	},
	"corporate": {
		Title: "Pedidos Corporativos",
		Kind:  InfoCompany,
		Paragraphs: []string{
			"Uniformes sustentáveis para sua empresa.",
			"Personalizamos nossas camisetas com a sua marca.",
		},
	},
	"careers": {
		Title:      "Trabalhe Conosco",
		Kind:       InfoCompany,
		Paragraphs: []string{"Estamos sempre buscando talentos que queiram mudar o mundo. Envie seu CV para rh@earthfirst.com.br"},
		Bullets: []string{
			"Desenvolvedor Front-end",
			"Designer de Moda Sustentável",
			"Especialista em Logística Verde",
		},
	},
}

// InfoFor returns the content for key, or a "not found" notice.
func InfoFor(key string) Info {
	info, ok := infos[key]
	if !ok {
		return Info{
			Key:        key,
			Title:      "Informação",
			Kind:       InfoCompany,
			Paragraphs: []string{"Conteúdo não encontrado."},
		}
	}
	info.Key = key
	info.Paragraphs = append([]string(nil), info.Paragraphs...)
	info.Bullets = append([]string(nil), info.Bullets...)
	return info
}
